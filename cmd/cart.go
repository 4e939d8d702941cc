package cmd

import (
	"context"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/adapters/render/storefront"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart",
	}

	cmd.AddCommand(
		newCartShowCmd(app),
		newCartAddCmd(app),
		newCartRemoveCmd(app),
		newCartIncCmd(app),
		newCartDecCmd(app),
		newCartClearCmd(app),
	)

	return cmd
}

// refreshCart pulls the server cart into the local mirror before any
// line-keyed operation, so line ids the user passes resolve correctly.
func refreshCart(cmd *cobra.Command, app *app) error {
	return runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Syncing cart...", func(ctx context.Context) error {
		return app.cart.Fetch(ctx)
	})
}

func newCartShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.sessions.LoggedIn() {
				return domain.ErrNotLoggedIn
			}
			if err := refreshCart(cmd, app); err != nil {
				return err
			}

			view, err := storefront.RenderCart(app.cart.Lines(), app.cart.Subtotal())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newCartAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.sessions.LoggedIn() {
				return domain.ErrNotLoggedIn
			}
			if err := refreshCart(cmd, app); err != nil {
				return err
			}

			product, err := app.catalog.Product(cmd.Context(), domain.ProductID(args[0]))
			if err != nil {
				return err
			}

			line, err := app.cart.Add(cmd.Context(), product)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s in cart (x%d)\n", product.Name, line.Quantity)
			return nil
		},
	}
}

func newCartRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <line-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := refreshCart(cmd, app); err != nil {
				return err
			}

			if err := app.cart.Remove(cmd.Context(), domain.LineID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed from cart")
			return nil
		},
	}
}

func newCartIncCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inc <line-id>",
		Short: "Increase a line's quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := refreshCart(cmd, app); err != nil {
				return err
			}

			line, err := app.cart.IncreaseQty(cmd.Context(), domain.LineID(args[0]))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s x%d\n", line.Product.Name, line.Quantity)
			return nil
		},
	}
}

func newCartDecCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dec <line-id>",
		Short: "Decrease a line's quantity by one (removes the line at zero)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := refreshCart(cmd, app); err != nil {
				return err
			}

			line, err := app.cart.DecreaseQty(cmd.Context(), domain.LineID(args[0]))
			if err != nil {
				return err
			}

			if line.ID == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed from cart")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s x%d\n", line.Product.Name, line.Quantity)
			return nil
		},
	}
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.sessions.LoggedIn() {
				return domain.ErrNotLoggedIn
			}

			if err := app.cart.Clear(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}
