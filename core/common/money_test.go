package common

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatMoney(t *testing.T) {
	Convey("Totals render with a currency symbol", t, func() {
		out := FormatMoney(decimal.NewFromInt(45), "USD", "en")
		So(out, ShouldStartWith, "$")
		So(out, ShouldContainSubstring, "45")
	})

	Convey("Unknown codes fall back to USD", t, func() {
		out := FormatMoney(decimal.NewFromInt(3), "???", "xx-invalid-tag-")
		So(strings.Contains(out, "3"), ShouldBeTrue)
		So(out, ShouldStartWith, "$")
	})
}
