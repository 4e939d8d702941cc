package cmd

import (
	"context"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/adapters/render/storefront"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newShopCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the dessert catalog",
	}

	cmd.AddCommand(newShopProductsCmd(app), newShopProductCmd(app), newShopCategoriesCmd(app))

	return cmd
}

func newShopProductsCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var products []domain.ProductSummary
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading catalog...", func(ctx context.Context) error {
				var err error
				products, err = app.catalog.Products(ctx, limit)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderProducts(products))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of products (0 for all)")

	return cmd
}

func newShopProductCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := app.catalog.Product(cmd.Context(), domain.ProductID(args[0]))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderProducts([]domain.ProductSummary{product}))
			return nil
		},
	}
}

func newShopCategoriesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := app.catalog.Categories(cmd.Context())
			if err != nil {
				return err
			}

			for _, category := range categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", category.ID, category.Name)
			}
			return nil
		},
	}
}
