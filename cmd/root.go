package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sweet",
		Short:         "Sweetshop CLI: browse, fill your cart, and order desserts from the terminal",
		Long:          "sweet is a terminal client for the Sweetshop dessert store: browse the catalog, manage your cart and wishlist, check out, and (for admins) manage users, products and orders.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// Trust the persisted session here; the first authenticated
		// request is what actually proves the credential valid.
		return app.sessions.Restore(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newProfileCmd(app),
		newShopCmd(app),
		newCartCmd(app),
		newWishlistCmd(app),
		newOrderCmd(app),
		newAdminCmd(app),
	)

	return rootCmd
}
