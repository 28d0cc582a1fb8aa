package deps

import (
	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/goamz/s3"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/siddontang/ledisdb/ledis"
	"github.com/tidwall/buntdb"
	"github.com/tryanzu/storefront/core/events"
	"github.com/tryanzu/storefront/core/kv"
	"github.com/tryanzu/storefront/modules/cart"
	"github.com/tryanzu/storefront/modules/exceptions"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gopkg.in/mgo.v2"
)

// Deps contains bootstraped dependencies.
type Deps struct {
	ConfigProvider          *config.Config
	LoggerProvider          *logging.Logger
	ExceptionsProvider      *exceptions.ExceptionsModule
	TracerProvider          *sdktrace.TracerProvider
	EventsProvider          *events.Bus
	LedisConnProvider       *ledis.Ledis
	LedisProvider           *ledis.DB
	BuntProvider            *buntdb.DB
	CacheProvider           *redis.Client
	DatabaseSessionProvider *mgo.Session
	DatabaseProvider        *mgo.Database
	S3Provider              *s3.Bucket
	StorageProvider         kv.Store
	CartsProvider           *cart.Registry
}

func (d Deps) Config() *config.Config {
	return d.ConfigProvider
}

func (d Deps) Log() *logging.Logger {
	return d.LoggerProvider
}

func (d Deps) Exceptions() *exceptions.ExceptionsModule {
	return d.ExceptionsProvider
}

func (d Deps) Events() *events.Bus {
	return d.EventsProvider
}

func (d Deps) LedisDB() *ledis.DB {
	return d.LedisProvider
}

func (d Deps) BuntDB() *buntdb.DB {
	return d.BuntProvider
}

func (d Deps) Cache() *redis.Client {
	return d.CacheProvider
}

func (d Deps) Mgo() *mgo.Database {
	return d.DatabaseProvider
}

func (d Deps) S3() *s3.Bucket {
	return d.S3Provider
}

func (d Deps) Storage() kv.Store {
	return d.StorageProvider
}

func (d Deps) Carts() *cart.Registry {
	return d.CartsProvider
}
