package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/op/go-logging"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	log    = logging.MustGetLogger("cart")
	tracer = otel.Tracer("github.com/tryanzu/storefront/modules/cart")
)

// Cart holds the ordered line items of one visitor, at most one per
// variant id, and writes the whole list to its bucket after every mutation.
type Cart struct {
	mu      sync.RWMutex
	items   []CartItem
	storage Bucket
	opts    Options
}

// Boot restores a cart from storage. Missing or malformed data starts an
// empty cart; a failing store does too unless the policy is strict.
func Boot(ctx context.Context, storage Bucket, options ...Option) (*Cart, error) {
	opts := defaultOptions()
	for _, fn := range options {
		fn(&opts)
	}

	module := &Cart{
		storage: storage,
		opts:    opts,
	}

	restored, err := storage.Restore(ctx)
	if err != nil {
		var malformed *CartError
		switch {
		case errors.As(err, &malformed):
			opts.Logger.Warningf("starting with an empty cart: %v", err)
		case opts.Persist == StrictPersistence:
			return nil, err
		default:
			module.report(err)
		}
		restored = nil
	}

	module.items = normalize(restored)
	return module, nil
}

// normalize merges duplicate variant ids, which only a foreign writer could
// have produced, keeping the first position.
func normalize(items []CartItem) []CartItem {
	list := make([]CartItem, 0, len(items))
	index := map[string]int{}
	for _, item := range items {
		if i, exists := index[item.GetId()]; exists {
			list[i].Quantity += item.Quantity
			continue
		}
		index[item.GetId()] = len(list)
		list = append(list, item)
	}
	return list
}

// AddItem merges quantity into the line of variant, appending a new line
// when there is none. Product and variant of an existing line are not refreshed.
func (module *Cart) AddItem(ctx context.Context, product Product, variant Variant, quantity int) error {
	change := Change{Op: "AddItem", VariantID: variant.ID, Quantity: quantity}
	return module.mutate(ctx, change, func(items []CartItem) ([]CartItem, error) {
		for i, item := range items {
			if item.GetId() != variant.ID {
				continue
			}
			return module.withQuantity(items, i, item.Quantity+quantity)
		}

		item := CartItem{Product: product, Variant: variant, Quantity: quantity}.clone()
		if quantity < 1 {
			switch module.opts.Quantity {
			case RejectNonPositive:
				return nil, ErrInvalidQuantity
			case RemoveNonPositive:
				return items, nil
			}
		}
		return append(items, item), nil
	})
}

// RemoveItem drops the line of variantID. Unknown ids are a no-op.
func (module *Cart) RemoveItem(ctx context.Context, variantID string) error {
	change := Change{Op: "RemoveItem", VariantID: variantID}
	return module.mutate(ctx, change, func(items []CartItem) ([]CartItem, error) {
		return without(items, variantID), nil
	})
}

// UpdateQuantity sets, not increments, the quantity of variantID's line.
func (module *Cart) UpdateQuantity(ctx context.Context, variantID string, quantity int) error {
	change := Change{Op: "UpdateQuantity", VariantID: variantID, Quantity: quantity}
	return module.mutate(ctx, change, func(items []CartItem) ([]CartItem, error) {
		for i, item := range items {
			if item.GetId() == variantID {
				return module.withQuantity(items, i, quantity)
			}
		}
		return items, nil
	})
}

// Clear empties the cart.
func (module *Cart) Clear(ctx context.Context) error {
	return module.mutate(ctx, Change{Op: "Clear"}, func([]CartItem) ([]CartItem, error) {
		return []CartItem{}, nil
	})
}

// Total sums first price times quantity over every line.
func (module *Cart) Total() (decimal.Decimal, error) {
	module.mu.RLock()
	defer module.mu.RUnlock()

	total := decimal.Zero
	for _, item := range module.items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(subtotal)
	}
	return total, nil
}

// Items returns a copy of the lines in insertion order. Prices and the top
// level of attribute maps are copied too; nested attribute values are shared.
func (module *Cart) Items() []CartItem {
	module.mu.RLock()
	defer module.mu.RUnlock()

	list := make([]CartItem, len(module.items))
	for i, item := range module.items {
		list[i] = item.clone()
	}
	return list
}

func (module *Cart) Find(variantID string) (CartItem, bool) {
	module.mu.RLock()
	defer module.mu.RUnlock()

	for _, item := range module.items {
		if item.GetId() == variantID {
			return item.clone(), true
		}
	}
	return CartItem{}, false
}

// Count is the number of units across all lines.
func (module *Cart) Count() int {
	module.mu.RLock()
	defer module.mu.RUnlock()

	count := 0
	for _, item := range module.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty checks if no items in cart object.
func (module *Cart) IsEmpty() bool {
	module.mu.RLock()
	defer module.mu.RUnlock()
	return len(module.items) == 0
}

// Change describes an applied mutation. Quantity is the requested one, Count
// the units in the cart afterwards.
type Change struct {
	Scope     string
	Op        string
	VariantID string
	Quantity  int
	Count     int
}

func (c Change) attributes() []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if c.Scope != "" {
		attrs = append(attrs, attribute.String("cart.scope", c.Scope))
	}
	if c.VariantID != "" {
		attrs = append(attrs, attribute.String("cart.variant_id", c.VariantID))
	}
	if c.Op == "AddItem" || c.Op == "UpdateQuantity" {
		attrs = append(attrs, attribute.Int("cart.quantity", c.Quantity))
	}
	return attrs
}

type transform func([]CartItem) ([]CartItem, error)

// mutate runs fn and the save under the write lock. fn must not modify
// the slice it receives in place.
func (module *Cart) mutate(ctx context.Context, change Change, fn transform) error {
	change.Scope = module.opts.Scope
	ctx, span := tracer.Start(ctx, "cart."+change.Op, trace.WithAttributes(change.attributes()...))
	defer span.End()

	module.mu.Lock()
	defer module.mu.Unlock()

	items, err := fn(module.items)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	module.items = items

	if module.opts.OnChange != nil {
		for _, item := range items {
			change.Count += item.Quantity
		}
		module.opts.OnChange(change)
	}

	if err := module.persist(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// withQuantity returns a copy of items with line i set to quantity, applying
// the quantity policy.
func (module *Cart) withQuantity(items []CartItem, i int, quantity int) ([]CartItem, error) {
	if quantity < 1 {
		switch module.opts.Quantity {
		case RejectNonPositive:
			return nil, ErrInvalidQuantity
		case RemoveNonPositive:
			return without(items, items[i].GetId()), nil
		}
	}

	list := make([]CartItem, len(items))
	copy(list, items)
	list[i].Quantity = quantity
	return list, nil
}

func without(items []CartItem, variantID string) []CartItem {
	list := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.GetId() != variantID {
			list = append(list, item)
		}
	}
	return list
}

func (module *Cart) persist(ctx context.Context) error {
	snapshot := module.items
	save := func() error {
		return module.storage.Save(ctx, snapshot)
	}

	var err error
	if module.opts.Persist == RetryFailures {
		schedule := backoff.WithMaxRetries(module.opts.BackOff(), module.opts.Retries)
		err = backoff.Retry(save, backoff.WithContext(schedule, ctx))
	} else {
		err = save()
	}
	if err == nil {
		return nil
	}

	switch module.opts.Persist {
	case IgnoreFailures:
		return nil
	case StrictPersistence:
		return err
	}
	module.report(err)
	return nil
}

func (module *Cart) report(err error) {
	module.opts.Logger.Errorf("cart storage failure, continuing in memory: %v", err)
	if module.opts.OnStorageError != nil {
		module.opts.OnStorageError(err)
	}
}
