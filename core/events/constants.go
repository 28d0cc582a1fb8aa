package events

const (
	CART_ITEM_ADDED   = "cart:item.added"
	CART_ITEM_REMOVED = "cart:item.removed"
	CART_ITEM_UPDATED = "cart:item.updated"
	CART_CLEARED      = "cart:cleared"
)

// CartEvents lists every event a cart change maps to.
var CartEvents = []string{CART_ITEM_ADDED, CART_ITEM_REMOVED, CART_ITEM_UPDATED, CART_CLEARED}
