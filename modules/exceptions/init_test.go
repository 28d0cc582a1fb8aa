package exceptions

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExceptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	Convey("With reporting disabled", t, func() {
		module, err := Boot("", logging.MustGetLogger("test"))
		So(err, ShouldBeNil)

		Convey("Capture and the storage hook do not panic", func() {
			So(func() { module.Capture(errors.New("boom"), nil) }, ShouldNotPanic)
			So(func() { module.StorageHook("cart")(errors.New("disk full")) }, ShouldNotPanic)
			So(func() { module.Capture(nil, nil) }, ShouldNotPanic)
		})

		Convey("Recover swallows panics", func() {
			So(func() {
				defer module.Recover()
				panic("exploded")
			}, ShouldNotPanic)
		})

		Convey("ErrorTracking turns handler panics into 500s", func() {
			router := gin.New()
			router.Use(module.ErrorTracking())
			router.GET("/explode", func(c *gin.Context) {
				panic(errors.New("exploded"))
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/explode", nil)
			router.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, 500)
		})
	})

	Convey("An invalid DSN is rejected", t, func() {
		_, err := Boot("://not a dsn", nil)
		So(err, ShouldNotBeNil)
	})
}
