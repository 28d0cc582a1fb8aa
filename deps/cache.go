package deps

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tryanzu/storefront/core/kv"
)

func IgniteCache(container Deps) (Deps, error) {
	address, err := container.Config().String("storage.redis.addr")
	if err != nil {
		return container, err
	}

	client := kv.DialRedis(address)
	if !kv.NewRedisStore(client).Ping(context.Background()) {
		client.Close()
		return container, errors.Errorf("redis at %s is not answering", address)
	}

	container.CacheProvider = client
	return container, nil
}
