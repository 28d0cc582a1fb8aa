package deps

import (
	"github.com/pkg/errors"
	"github.com/tryanzu/storefront/core/kv"
)

// IgniteStorage opens the backend named by storage.driver and exposes it
// as a kv.Store.
func IgniteStorage(container Deps) (Deps, error) {
	var err error
	driver := container.Config().UString("storage.driver", "ledis")
	switch driver {
	case "memory":
		container.StorageProvider = kv.NewMemoryStore()
	case "ledis":
		if container, err = IgniteLedisDB(container); err == nil {
			container.StorageProvider = kv.NewLedisStore(container.LedisDB())
		}
	case "bunt":
		if container, err = IgniteBuntDB(container); err == nil {
			container.StorageProvider = kv.NewBuntStore(container.BuntDB())
		}
	case "redis":
		if container, err = IgniteCache(container); err == nil {
			container.StorageProvider = kv.NewRedisStore(container.Cache())
		}
	case "mongo":
		if container, err = IgniteMongoDB(container); err == nil {
			container.StorageProvider = kv.NewMongoStore(container.Mgo(), container.Config().UString("storage.mongo.collection", "storage"))
		}
	case "s3":
		if container, err = IgniteS3(container); err == nil {
			container.StorageProvider = kv.NewS3Store(container.S3(), container.Config().UString("storage.s3.prefix", "carts/"))
		}
	default:
		err = errors.Errorf("unknown storage driver %q", driver)
	}
	if err != nil {
		return container, errors.Wrapf(err, "storage driver %s", driver)
	}

	log.Infof("cart storage: %s", driver)
	return container, nil
}
