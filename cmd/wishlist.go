package cmd

import (
	"context"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/adapters/render/storefront"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWishlistCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wishlist",
		Aliases: []string{"wish"},
		Short:   "Manage your wishlist",
	}

	cmd.AddCommand(newWishlistShowCmd(app), newWishlistToggleCmd(app), newWishlistRemoveCmd(app))

	return cmd
}

func refreshWishlist(cmd *cobra.Command, app *app) error {
	return runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Syncing wishlist...", func(ctx context.Context) error {
		return app.wishlist.Fetch(ctx)
	})
}

func newWishlistShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.sessions.LoggedIn() {
				return domain.ErrNotLoggedIn
			}
			if err := refreshWishlist(cmd, app); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderWishlist(app.wishlist.Entries()))
			return nil
		},
	}
}

func newWishlistToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add the product to the wishlist, or remove it if already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.sessions.LoggedIn() {
				return domain.ErrNotLoggedIn
			}
			if err := refreshWishlist(cmd, app); err != nil {
				return err
			}

			product, err := app.catalog.Product(cmd.Context(), domain.ProductID(args[0]))
			if err != nil {
				return err
			}

			added, err := app.wishlist.Toggle(cmd.Context(), product)
			if err != nil {
				return err
			}

			if added {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s added to wishlist\n", product.Name)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s removed from wishlist\n", product.Name)
			}
			return nil
		},
	}
}

func newWishlistRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := refreshWishlist(cmd, app); err != nil {
				return err
			}

			if err := app.wishlist.Remove(cmd.Context(), domain.ProductID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed from wishlist")
			return nil
		},
	}
}
