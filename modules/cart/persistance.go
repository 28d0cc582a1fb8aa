package cart

import (
	"context"
	"encoding/json"

	"github.com/tryanzu/storefront/core/kv"
)

// StorageKey is the key the whole cart state lives under.
const StorageKey = "cart-storage"

// Bucket persists and restores the full list of cart items.
type Bucket interface {

	// Restore the cart at boot. A nil slice and nil error mean nothing was stored.
	Restore(ctx context.Context) ([]CartItem, error)

	// Save replaces the persisted cart with items.
	Save(ctx context.Context, items []CartItem) error
}

// State is the persisted envelope. It matches the layout written by the
// storefront's browser-side store, prices included as JSON numbers, so both
// can read each other's data. Quoted prices are accepted on read.
type State struct {
	State struct {
		Items []CartItem `json:"items"`
	} `json:"state"`
	Version int `json:"version"`
}

// StoreBucket encodes the cart as JSON under a single key of a kv.Store.
type StoreBucket struct {
	Store kv.Store
	Key   string
}

func NewStoreBucket(store kv.Store) StoreBucket {
	return StoreBucket{Store: store, Key: StorageKey}
}

func (b StoreBucket) Restore(ctx context.Context) ([]CartItem, error) {
	encoded, err := b.Store.Get(ctx, b.Key)
	if err == kv.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "get", Key: b.Key, Err: err}
	}

	items, err := Decode(encoded)
	if err != nil {
		return nil, &CartError{Key: b.Key, Err: err}
	}
	return items, nil
}

func (b StoreBucket) Save(ctx context.Context, items []CartItem) error {
	encoded, err := Encode(items)
	if err != nil {
		return &StorageError{Op: "encode", Key: b.Key, Err: err}
	}
	if err := b.Store.Set(ctx, b.Key, encoded); err != nil {
		return &StorageError{Op: "set", Key: b.Key, Err: err}
	}
	return nil
}

// Encode renders items in the persisted envelope.
func Encode(items []CartItem) (string, error) {
	var s State
	s.State.Items = items
	if s.State.Items == nil {
		s.State.Items = []CartItem{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses the persisted envelope.
func Decode(encoded string) ([]CartItem, error) {
	var s State
	if err := json.Unmarshal([]byte(encoded), &s); err != nil {
		return nil, err
	}
	return s.State.Items, nil
}
