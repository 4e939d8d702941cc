package cmd

import (
	"errors"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				email, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Email")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptPassword(cmd.OutOrStdout(), "Password")
				if err != nil {
					return err
				}
			}

			user, err := app.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newRegisterCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if name == "" {
				name, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Name")
				if err != nil {
					return err
				}
			}
			if email == "" {
				email, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Email")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptPassword(cmd.OutOrStdout(), "Password")
				if err != nil {
					return err
				}
				confirm, err := promptPassword(cmd.OutOrStdout(), "Confirm password")
				if err != nil {
					return err
				}
				if password != confirm {
					return errors.New("passwords do not match")
				}
			}

			user, err := app.auth.Register(cmd.Context(), domain.Registration{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. Log in with `sweet login --email %s`\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (prompted when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}
