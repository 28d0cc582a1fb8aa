package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/facebookgo/inject"
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	chttp "github.com/tryanzu/storefront/core/http"
	"github.com/tryanzu/storefront/modules/api/controller/cart"
	"github.com/tryanzu/storefront/modules/exceptions"
)

var log = logging.MustGetLogger("api")

type Module struct {
	Dependencies ModuleDI
	Cart         *cart.API                    `inject:""`
	Exceptions   *exceptions.ExceptionsModule `inject:""`
}

type ModuleDI struct {
	Config *config.Config `inject:""`
}

// Populate provides the module to g and resolves the whole graph.
func (module *Module) Populate(g *inject.Graph) error {
	err := g.Provide(
		&inject.Object{Value: &module.Dependencies},
		&inject.Object{Value: module},
	)
	if err != nil {
		return err
	}
	return g.Populate()
}

// Router builds the gin engine with every route of the cart API.
func (module *Module) Router() *gin.Engine {
	conf := module.Dependencies.Config

	// If development turn debug on
	if conf.UString("environment", "development") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Session storage
	store := sessions.NewCookieStore([]byte(conf.UString("application.secret", "")))

	router := gin.New()
	router.Use(gin.Logger())

	// Middlewares setup
	router.Use(module.Exceptions.ErrorTracking())
	router.Use(chttp.CORS(conf.UString("api.origin", "http://localhost:3000")))
	router.Use(sessions.Sessions("session", store))
	router.Use(chttp.SessionMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "okay"})
	})

	v1 := router.Group("/v1")

	// Cart routes
	v1.GET("/cart", module.Cart.Get)
	v1.POST("/cart", module.Cart.Add)
	v1.PUT("/cart/:id", module.Cart.Update)
	v1.DELETE("/cart/:id", module.Cart.Delete)
	v1.DELETE("/cart", module.Cart.Clear)

	return router
}

// Run serves the API until interrupted.
func (module *Module) Run(bindTo string) {
	srv := &http.Server{
		Addr:    bindTo,
		Handler: module.Router(),
	}

	// Start the http server as an isolated goroutine.
	go func() {
		log.Infof("listening on %s", bindTo)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	log.Info("Server exiting")
}
