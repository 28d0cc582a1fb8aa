package shell

import (
	"context"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/tryanzu/storefront/modules/cart"
	"github.com/tryanzu/storefront/modules/exceptions"
)

// RunShell starts an interactive shell over one cart.
func RunShell(c *cart.Cart, currency, locale string, errs *exceptions.ExceptionsModule) {
	shell := ishell.New()
	shell.Println("Storefront Cart Shell 0.3")

	cmds := Commands{Cart: c, Currency: currency, Locale: locale}
	for _, name := range cmds.Names() {
		name := name
		shell.AddCmd(&ishell.Cmd{
			Name: name,
			Help: cmds.Help(name),
			Func: func(ctx *ishell.Context) {
				if errs != nil {
					defer errs.Recover()
				}
				out, err := cmds.Exec(context.Background(), append([]string{name}, ctx.Args...))
				if err != nil {
					ctx.Err(err)
					return
				}
				if out != "" {
					ctx.Println(strings.TrimRight(out, "\n"))
				}
			},
		})
	}

	// start shell
	shell.Run()
}
