package cmd

import (
	"context"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/adapters/render/storefront"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Check out and track orders",
	}

	cmd.AddCommand(newOrderCheckoutCmd(app), newOrderListCmd(app), newOrderVerifyCmd(app))

	return cmd
}

func newOrderCheckoutCmd(app *app) *cobra.Command {
	var address domain.ShippingAddress

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for everything in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := refreshCart(cmd, app); err != nil {
				return err
			}

			var order domain.Order
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Placing order...", func(ctx context.Context) error {
				var err error
				order, err = app.orders.Checkout(ctx, address)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Order %s placed. Total %.2f, receipt %s\n", order.ID, order.Total, order.Receipt)
			return nil
		},
	}

	cmd.Flags().StringVar(&address.FullName, "name", "", "Recipient full name")
	cmd.Flags().StringVar(&address.Phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&address.Line1, "address", "", "Address line 1")
	cmd.Flags().StringVar(&address.Line2, "address2", "", "Address line 2")
	cmd.Flags().StringVar(&address.City, "city", "", "City")
	cmd.Flags().StringVar(&address.Pincode, "pincode", "", "Postal code")
	cmd.Flags().StringVar(&address.State, "state", "", "State")

	return cmd
}

func newOrderListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show your order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var orders []domain.Order
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading orders...", func(ctx context.Context) error {
				var err error
				orders, err = app.orders.History(ctx)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderOrders(orders))
			return nil
		},
	}
}

func newOrderVerifyCmd(app *app) *cobra.Command {
	var proof domain.PaymentProof
	var orderID string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Submit a payment confirmation for verification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proof.OrderID = domain.OrderID(orderID)
			if err := app.orders.VerifyPayment(cmd.Context(), proof); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Payment verified")
			return nil
		},
	}

	cmd.Flags().StringVar(&orderID, "order", "", "Order id")
	cmd.Flags().StringVar(&proof.PaymentID, "payment", "", "Gateway payment id")
	cmd.Flags().StringVar(&proof.Signature, "signature", "", "Gateway signature")
	_ = cmd.MarkFlagRequired("order")
	_ = cmd.MarkFlagRequired("payment")
	_ = cmd.MarkFlagRequired("signature")

	return cmd
}
