package shell

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/storefront/core/kv"
	"github.com/tryanzu/storefront/modules/cart"
)

func TestCommands(t *testing.T) {
	ctx := context.Background()

	Convey("Given a shell over an empty cart", t, func() {
		c, err := cart.Boot(ctx, cart.NewStoreBucket(kv.NewMemoryStore()))
		So(err, ShouldBeNil)
		cmds := Commands{Cart: c, Currency: "USD", Locale: "en"}

		Convey("list reports an empty cart", func() {
			out, err := cmds.Exec(ctx, []string{"list"})
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "cart is empty\n")
		})

		Convey("add accumulates and lists the line", func() {
			_, err := cmds.Exec(ctx, []string{"add", "v1", "10", "2", "Shirt"})
			So(err, ShouldBeNil)
			out, err := cmds.Exec(ctx, []string{"add", "v1", "10"})
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Shirt")
			So(c.Count(), ShouldEqual, 3)

			total, err := cmds.Exec(ctx, []string{"total"})
			So(err, ShouldBeNil)
			So(total, ShouldContainSubstring, "30")
		})

		Convey("update and remove change the cart", func() {
			cmds.Exec(ctx, []string{"add", "v1", "10"})
			cmds.Exec(ctx, []string{"add", "v2", "25"})

			_, err := cmds.Exec(ctx, []string{"update", "v1", "4"})
			So(err, ShouldBeNil)
			item, _ := c.Find("v1")
			So(item.Quantity, ShouldEqual, 4)

			_, err = cmds.Exec(ctx, []string{"remove", "v2"})
			So(err, ShouldBeNil)
			_, found := c.Find("v2")
			So(found, ShouldBeFalse)

			out, err := cmds.Exec(ctx, []string{"clear"})
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "cart cleared\n")
			So(c.IsEmpty(), ShouldBeTrue)
		})

		Convey("bad input is an error", func() {
			_, err := cmds.Exec(ctx, []string{"add", "v1", "ten"})
			So(err, ShouldNotBeNil)
			_, err = cmds.Exec(ctx, []string{"update", "v1"})
			So(err, ShouldNotBeNil)
			_, err = cmds.Exec(ctx, []string{"checkout"})
			So(err, ShouldNotBeNil)
			_, err = cmds.Exec(ctx, nil)
			So(err, ShouldNotBeNil)
			So(c.IsEmpty(), ShouldBeTrue)
		})

		Convey("every command has help", func() {
			So(cmds.Names(), ShouldResemble, []string{"add", "clear", "list", "remove", "total", "update"})
			So(cmds.Help("add"), ShouldStartWith, "add <variant-id>")
		})
	})
}
