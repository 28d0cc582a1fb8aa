package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookgo/inject"
	"github.com/spf13/cobra"
	"github.com/tryanzu/storefront/core/shell"
	"github.com/tryanzu/storefront/deps"
	"github.com/tryanzu/storefront/modules/api"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront cart engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return bootstrap()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			container.Close()
		},
	}

	var cmdAPI = &cobra.Command{
		Use:   "api [port]",
		Short: "Starts API web server",
		Long: `Starts API web server listening
        in the specified port or api.port
        `,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port := container.Config().UString("api.port", ":3200")
			if len(args) == 1 {
				port = args[0]
			}

			// Graph main object (used to inject dependencies)
			var g inject.Graph
			err := g.Provide(
				&inject.Object{Value: container.Config(), Complete: true},
				&inject.Object{Value: container.Log(), Complete: true},
				&inject.Object{Value: container.Exceptions(), Complete: true},
				&inject.Object{Value: container.Carts(), Complete: true},
			)
			if err != nil {
				return err
			}

			var module api.Module
			if err := module.Populate(&g); err != nil {
				return err
			}

			// Run API module
			module.Run(port)
			return nil
		},
	}

	shellCmd := &cobra.Command{
		Use:   "shell [scope]",
		Short: "Starts interactive shell",
		Long: `Starts the interactive cart shell
		over one cart scope (cart.scope by default).
        `,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := commands(args)
			if err != nil {
				return err
			}
			shell.RunShell(cmds.Cart, cmds.Currency, cmds.Locale, container.Exceptions())
			return nil
		},
	}

	cmdCart := &cobra.Command{
		Use:   "cart",
		Short: "Inspects a stored cart",
	}
	for _, name := range []string{"show", "clear"} {
		name := name
		cmdCart.AddCommand(&cobra.Command{
			Use:   name + " [scope]",
			Short: map[string]string{"show": "Lists a cart's lines and total", "clear": "Empties a cart"}[name],
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmds, err := commands(args)
				if err != nil {
					return err
				}
				op := map[string]string{"show": "list", "clear": "clear"}[name]
				out, err := cmds.Exec(context.Background(), []string{op})
				if err != nil {
					return err
				}
				fmt.Print(out)
				return nil
			},
		})
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("storefront", deps.Version)
		},
	}

	rootCmd.AddCommand(cmdAPI, shellCmd, cmdCart, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commands boots the cart of the scope in args, or cart.scope.
func commands(args []string) (shell.Commands, error) {
	conf := container.Config()
	scope := conf.UString("cart.scope", "cli")
	if len(args) == 1 {
		scope = args[0]
	}

	c, err := container.Carts().Get(context.Background(), scope)
	if err != nil {
		return shell.Commands{}, err
	}
	return shell.Commands{
		Cart:     c,
		Currency: conf.UString("cart.currency", "USD"),
		Locale:   conf.UString("cart.locale", "en"),
	}, nil
}
