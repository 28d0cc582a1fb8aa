package events

import (
	"github.com/op/go-logging"
	"github.com/tryanzu/storefront/modules/cart"
)

var names = map[string]string{
	"AddItem":        CART_ITEM_ADDED,
	"RemoveItem":     CART_ITEM_REMOVED,
	"UpdateQuantity": CART_ITEM_UPDATED,
	"Clear":          CART_CLEARED,
}

func CartChanged(change cart.Change) Event {
	return Event{
		Name: names[change.Op],
		Params: map[string]interface{}{
			"scope":      change.Scope,
			"variant_id": change.VariantID,
			"quantity":   change.Quantity,
			"count":      change.Count,
		},
	}
}

// Emitter adapts bus to the cart change hook.
func Emitter(bus *Bus) func(cart.Change) {
	return func(change cart.Change) {
		bus.Emit(CartChanged(change))
	}
}

// TrackActivity logs cart activity.
func TrackActivity(logger *logging.Logger) Handler {
	return func(event Event) error {
		p := event.Params
		logger.Infof("%s scope=%v variant=%v quantity=%v count=%v", event.Name, p["scope"], p["variant_id"], p["quantity"], p["count"])
		return nil
	}
}
