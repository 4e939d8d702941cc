package cmd

import (
	"fmt"
	"strconv"

	"github.com/maelys-dev/sweetshop-cli/internal/adapters/render/storefront"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Store management (admin role required)",
	}

	cmd.AddCommand(
		newAdminUsersCmd(app),
		newAdminBlockCmd(app, true),
		newAdminBlockCmd(app, false),
		newAdminProductCmd(app),
		newAdminOrdersCmd(app),
		newAdminStatusCmd(app),
		newAdminStatsCmd(app),
	)

	return cmd
}

func newAdminUsersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.admin.Users(cmd.Context())
			if err != nil {
				return err
			}

			for _, user := range users {
				flag := ""
				if user.Blocked {
					flag = "\tBLOCKED"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s%s\n", user.ID, user.Name, user.Email, user.Role, flag)
			}
			return nil
		},
	}
}

func newAdminBlockCmd(app *app, block bool) *cobra.Command {
	use := "block <user-id>"
	short := "Block a user account"
	done := "User blocked"
	if !block {
		use = "unblock <user-id>"
		short = "Unblock a user account"
		done = "User unblocked"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.admin.SetUserBlocked(cmd.Context(), domain.UserID(args[0]), block); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		},
	}
}

func newAdminProductCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products",
	}

	cmd.AddCommand(newAdminProductSaveCmd(app), newAdminProductDeleteCmd(app))

	return cmd
}

func newAdminProductSaveCmd(app *app) *cobra.Command {
	var id string
	var name string
	var price string
	var image string
	var brand string
	var inactive bool

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a product, or update it when --id is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedPrice, err := strconv.ParseFloat(price, 64)
			if err != nil {
				return fmt.Errorf("parse --price: %w", err)
			}

			product, err := app.admin.SaveProduct(cmd.Context(), domain.ProductSummary{
				ID:     domain.ProductID(id),
				Name:   name,
				Price:  parsedPrice,
				Image:  image,
				Brand:  brand,
				Active: !inactive,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved product %s (%s)\n", product.Name, product.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Product id (empty creates a new product)")
	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&price, "price", "", "Product price")
	cmd.Flags().StringVar(&image, "image", "", "Image URL")
	cmd.Flags().StringVar(&brand, "brand", "", "Brand")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Hide the product from the storefront")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newAdminProductDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.admin.DeleteProduct(cmd.Context(), domain.ProductID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Product deleted")
			return nil
		},
	}
}

func newAdminOrdersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List all orders across users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := app.admin.Orders(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderOrders(orders))
			return nil
		},
	}
}

func newAdminStatsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show store totals: users, products, orders and revenue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := app.admin.Stats(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderStats(stats))
			return nil
		},
	}
}

func newAdminStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Set an order's status (Processing|Shipped|Delivered|Cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.admin.SetOrderStatus(cmd.Context(), domain.OrderID(args[0]), domain.OrderStatus(args[1])); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Order status updated")
			return nil
		},
	}
}
