package shell

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tryanzu/storefront/core/common"
	"github.com/tryanzu/storefront/modules/cart"
)

// Commands executes textual cart commands. It backs both the interactive
// shell and the one-shot CLI.
type Commands struct {
	Cart     *cart.Cart
	Currency string
	Locale   string
}

type command struct {
	help string
	run  func(Commands, context.Context, []string) (string, error)
}

var usage = map[string]string{
	"add":    "add <variant-id> <price> [quantity] [product name]",
	"remove": "remove <variant-id>",
	"update": "update <variant-id> <quantity>",
	"clear":  "clear",
	"total":  "total",
	"list":   "list",
}

var commands = map[string]command{
	"add":    {"Add quantity (default 1) of a variant priced at price.", Commands.add},
	"remove": {"Remove the line of a variant.", Commands.remove},
	"update": {"Set the quantity of a variant's line.", Commands.update},
	"clear":  {"Empty the cart.", Commands.clear},
	"total":  {"Print the cart total.", Commands.total},
	"list":   {"List cart lines.", Commands.list},
}

// Names lists the available commands, sorted.
func (Commands) Names() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (Commands) Help(name string) string {
	return usage[name] + " - " + commands[name].help
}

// Exec runs args[0] with the remaining args.
func (cmds Commands) Exec(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("no command given")
	}
	cmd, exists := commands[args[0]]
	if !exists {
		return "", errors.Errorf("unknown command %q", args[0])
	}
	return cmd.run(cmds, ctx, args[1:])
}

func (cmds Commands) add(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("usage: " + usage["add"])
	}
	price, err := decimal.NewFromString(args[1])
	if err != nil {
		return "", errors.Wrapf(err, "price %q", args[1])
	}
	quantity := 1
	if len(args) > 2 {
		if quantity, err = strconv.Atoi(args[2]); err != nil {
			return "", errors.Wrapf(err, "quantity %q", args[2])
		}
	}
	product := cart.Product{ID: args[0]}
	if len(args) > 3 {
		product.Name = args[3]
	}

	variant := cart.Variant{ID: args[0], Prices: []cart.Price{{Price: price, Currency: cmds.Currency}}}
	if err := cmds.Cart.AddItem(ctx, product, variant, quantity); err != nil {
		return "", err
	}
	return cmds.list(ctx, nil)
}

func (cmds Commands) remove(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: " + usage["remove"])
	}
	if err := cmds.Cart.RemoveItem(ctx, args[0]); err != nil {
		return "", err
	}
	return cmds.list(ctx, nil)
}

func (cmds Commands) update(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", errors.New("usage: " + usage["update"])
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return "", errors.Wrapf(err, "quantity %q", args[1])
	}
	if err := cmds.Cart.UpdateQuantity(ctx, args[0], quantity); err != nil {
		return "", err
	}
	return cmds.list(ctx, nil)
}

func (cmds Commands) clear(ctx context.Context, args []string) (string, error) {
	if err := cmds.Cart.Clear(ctx); err != nil {
		return "", err
	}
	return "cart cleared\n", nil
}

func (cmds Commands) total(ctx context.Context, args []string) (string, error) {
	total, err := cmds.Cart.Total()
	if err != nil {
		return "", err
	}
	return common.FormatMoney(total, cmds.Currency, cmds.Locale) + "\n", nil
}

func (cmds Commands) list(ctx context.Context, args []string) (string, error) {
	items := cmds.Cart.Items()
	if len(items) == 0 {
		return "cart is empty\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tPRODUCT\tQTY\tUNIT\tSUBTOTAL")
	for _, item := range items {
		unit, subtotal := "-", "-"
		if price, err := item.Variant.UnitPrice(); err == nil {
			unit = price.String()
			s, _ := item.Subtotal()
			subtotal = s.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", item.Variant.ID, item.Product.Name, item.Quantity, unit, subtotal)
	}
	w.Flush()

	total, err := cmds.total(ctx, nil)
	if err != nil {
		return buf.String(), nil
	}
	return buf.String() + "total: " + total, nil
}
