package kv

import (
	"context"
	"errors"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("kv")

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a string-keyed durable store. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Scoped prefixes every key with scope, so many carts can share one backend.
func Scoped(store Store, scope string) Store {
	if scope == "" {
		return store
	}
	return scoped{store, scope + ":"}
}

type scoped struct {
	Store
	prefix string
}

func (s scoped) Get(ctx context.Context, key string) (string, error) {
	return s.Store.Get(ctx, s.prefix+key)
}

func (s scoped) Set(ctx context.Context, key, value string) error {
	return s.Store.Set(ctx, s.prefix+key, value)
}
