package cmd

import (
	"errors"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/adapters/render/storefront"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileUpdateCmd(app), newProfilePasswordCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the logged-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, ok := app.sessions.Current()
			if !ok {
				return domain.ErrNotLoggedIn
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderProfile(user))
			return nil
		},
	}
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var name string
	var email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" && email == "" {
				return errors.New("nothing to update: pass --name and/or --email")
			}

			user, err := app.auth.UpdateProfile(cmd.Context(), domain.ProfilePatch{Name: name, Email: email})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile updated for %s\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&email, "email", "", "New email address")

	return cmd
}

func newProfilePasswordCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := promptPassword(cmd.OutOrStdout(), "Current password")
			if err != nil {
				return err
			}
			next, err := promptPassword(cmd.OutOrStdout(), "New password")
			if err != nil {
				return err
			}
			confirm, err := promptPassword(cmd.OutOrStdout(), "Confirm new password")
			if err != nil {
				return err
			}
			if next != confirm {
				return errors.New("passwords do not match")
			}

			if err := app.auth.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}
}
