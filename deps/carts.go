package deps

import (
	"github.com/op/go-logging"
	"github.com/tryanzu/storefront/core/events"
	"github.com/tryanzu/storefront/modules/cart"
)

// IgniteCarts builds the cart registry over the ignited storage.
func IgniteCarts(container Deps) (Deps, error) {
	conf := container.Config()
	persist, err := cart.ParsePersistPolicy(conf.UString("cart.persist_policy", "log"))
	if err != nil {
		return container, err
	}
	quantity, err := cart.ParseQuantityPolicy(conf.UString("cart.quantity_policy", "keep"))
	if err != nil {
		return container, err
	}

	options := []cart.Option{
		cart.WithPersistPolicy(persist),
		cart.WithQuantityPolicy(quantity),
		cart.WithRetries(uint64(conf.UInt("cart.retry.max", 3)), nil),
		cart.WithLogger(logging.MustGetLogger("cart")),
	}
	if container.Exceptions() != nil {
		options = append(options, cart.WithErrorHook(container.Exceptions().StorageHook("cart")))
	}

	if container.Events() != nil {
		options = append(options, cart.WithChangeHook(events.Emitter(container.Events())))
	}

	registry := cart.NewRegistry(container.Storage(), options...)
	registry.Key = conf.UString("storage.key", cart.StorageKey)
	registry.Capacity = conf.UInt("cart.registry.size", cart.DefaultCapacity)
	container.CartsProvider = registry
	return container, nil
}
