package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Price is one price entry of a variant. Only the first entry of a
// variant's list is ever charged.
type Price struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
}

// MarshalJSON writes the price as a JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Price    json.RawMessage `json:"price"`
		Currency string          `json:"currency,omitempty"`
	}{json.RawMessage(p.Price.String()), p.Currency})
}

// Variant is a purchasable SKU of a product.
type Variant struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name,omitempty"`
	Prices     []Price                `json:"prices"`
	Attributes map[string]interface{} `json:"attrs,omitempty"`
}

// UnitPrice returns the first price entry.
func (v Variant) UnitPrice() (decimal.Decimal, error) {
	if len(v.Prices) == 0 {
		return decimal.Zero, &PricingError{VariantID: v.ID}
	}
	return v.Prices[0].Price, nil
}

// Product is the catalog entry a variant belongs to. The engine never
// looks inside it.
type Product struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Image       string                 `json:"image,omitempty"`
	Type        string                 `json:"type,omitempty"`
	Attributes  map[string]interface{} `json:"attrs,omitempty"`
}

// CartItem is a line item: the intent to buy quantity units of a variant.
type CartItem struct {
	Product  Product `json:"product"`
	Variant  Variant `json:"variant"`
	Quantity int     `json:"quantity"`
}

func (item CartItem) GetId() string {
	return item.Variant.ID
}

// Subtotal is unit price times quantity.
func (item CartItem) Subtotal() (decimal.Decimal, error) {
	price, err := item.Variant.UnitPrice()
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(decimal.NewFromInt(int64(item.Quantity))), nil
}

// clone copies the price list and the top level of the attribute maps, so
// the copy can be handed out without sharing them with the cart.
func (item CartItem) clone() CartItem {
	if item.Variant.Prices != nil {
		prices := make([]Price, len(item.Variant.Prices))
		copy(prices, item.Variant.Prices)
		item.Variant.Prices = prices
	}
	item.Variant.Attributes = cloneAttrs(item.Variant.Attributes)
	item.Product.Attributes = cloneAttrs(item.Product.Attributes)
	return item
}

func cloneAttrs(attrs map[string]interface{}) map[string]interface{} {
	if attrs == nil {
		return nil
	}
	out := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
