package cart

import (
	"context"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/tryanzu/storefront/core/kv"
)

// DefaultCapacity bounds how many carts a Registry keeps booted.
const DefaultCapacity = 1024

// Registry owns one Cart per scope (a visitor session, the CLI user) over
// a shared store. Handing out the same *Cart per scope keeps concurrent
// requests of one visitor behind one lock.
//
// Only the Capacity most recently used scopes stay in memory. An evicted
// scope is booted again from the store on its next use.
type Registry struct {
	Store    kv.Store
	Options  []Option
	Key      string
	Capacity int

	mu    sync.Mutex
	carts *lru.Cache
}

func NewRegistry(store kv.Store, options ...Option) *Registry {
	return &Registry{
		Store:    store,
		Options:  options,
		Key:      StorageKey,
		Capacity: DefaultCapacity,
	}
}

// Get returns the cart of scope, booting it from storage when it is not
// held in memory.
func (r *Registry) Get(ctx context.Context, scope string) (*Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.carts == nil {
		size := r.Capacity
		if size < 1 {
			size = DefaultCapacity
		}
		cache, err := lru.New(size)
		if err != nil {
			return nil, err
		}
		r.carts = cache
	}
	if c, exists := r.carts.Get(scope); exists {
		return c.(*Cart), nil
	}

	key := r.Key
	if key == "" {
		key = StorageKey
	}
	options := append(append([]Option{}, r.Options...), WithScope(scope))
	c, err := Boot(ctx, StoreBucket{Store: kv.Scoped(r.Store, scope), Key: key}, options...)
	if err != nil {
		return nil, err
	}
	r.carts.Add(scope, c)
	return c, nil
}

// Scopes lists the scopes held in memory, sorted.
func (r *Registry) Scopes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := []string{}
	if r.carts == nil {
		return list
	}
	for _, scope := range r.carts.Keys() {
		list = append(list, scope.(string))
	}
	sort.Strings(list)
	return list
}
