package cart_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"github.com/tryanzu/storefront/core/kv"
	"github.com/tryanzu/storefront/modules/cart"
)

type cartTestContext struct {
	store *kv.MemoryStore
	cart  *cart.Cart
}

func (c *cartTestContext) reset() {
	c.store = kv.NewMemoryStore()
	c.cart = nil
}

func (c *cartTestContext) anEmptyCart() (err error) {
	c.cart, err = cart.Boot(context.Background(), cart.NewStoreBucket(c.store))
	return
}

func (c *cartTestContext) iAddOfVariantPriced(quantity int, id string, price int64) error {
	variant := cart.Variant{ID: id, Prices: []cart.Price{{Price: decimal.NewFromInt(price)}}}
	return c.cart.AddItem(context.Background(), cart.Product{ID: "product-" + id}, variant, quantity)
}

func (c *cartTestContext) iRemoveVariant(id string) error {
	return c.cart.RemoveItem(context.Background(), id)
}

func (c *cartTestContext) iSetTheQuantityOfVariantTo(id string, quantity int) error {
	return c.cart.UpdateQuantity(context.Background(), id, quantity)
}

func (c *cartTestContext) iClearTheCart() error {
	return c.cart.Clear(context.Background())
}

func (c *cartTestContext) theCartIsRestartedFromStorage() error {
	return c.anEmptyCart()
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if got := len(c.cart.Items()); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) variantHasQuantity(id string, quantity int) error {
	item, found := c.cart.Find(id)
	if !found {
		return fmt.Errorf("variant %q is not in the cart", id)
	}
	if item.Quantity != quantity {
		return fmt.Errorf("expected quantity %d for %q, got %d", quantity, id, item.Quantity)
	}
	return nil
}

func (c *cartTestContext) theTotalIs(expected int64) error {
	total, err := c.cart.Total()
	if err != nil {
		return err
	}
	if !total.Equal(decimal.NewFromInt(expected)) {
		return fmt.Errorf("expected total %d, got %s", expected, total)
	}
	return nil
}

func (c *cartTestContext) theLinesAre(list string) error {
	got := []string{}
	for _, item := range c.cart.Items() {
		got = append(got, item.Variant.ID)
	}
	if strings.Join(got, ",") != list {
		return fmt.Errorf("expected lines %s, got %s", list, strings.Join(got, ","))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^I add (-?\d+) of variant "([^"]*)" priced (\d+)$`, tc.iAddOfVariantPriced)
	ctx.Step(`^I remove variant "([^"]*)"$`, tc.iRemoveVariant)
	ctx.Step(`^I set the quantity of variant "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfVariantTo)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^the cart is restarted from storage$`, tc.theCartIsRestartedFromStorage)

	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^variant "([^"]*)" has quantity (-?\d+)$`, tc.variantHasQuantity)
	ctx.Step(`^the total is (\d+)$`, tc.theTotalIs)
	ctx.Step(`^the lines are "([^"]*)"$`, tc.theLinesAre)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
