package cli

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cardapio-cli/internal/api"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the restaurant for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("missing --email")
			}
			if password == "" {
				pw, err := readPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			res, err := app.Client.Login(ctx, email, password)
			if err != nil {
				if api.IsUnauthorized(err) {
					return errors.New("invalid email or password")
				}
				return err
			}
			if !res.Success {
				return errors.New("login rejected by the server")
			}
			if err := app.Session.SetRestaurantID(ctx, res.RestaurantID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in. Restaurant: %s\n", res.RestaurantID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored restaurant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.opCtx()
			defer cancel()
			if err := app.Session.ClearRestaurantID(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newRestaurantsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Restaurant commands",
	}
	cmd.AddCommand(newRestaurantsRegisterCmd(app))
	return cmd
}

func newRestaurantsRegisterCmd(app *App) *cobra.Command {
	var name, phone, address string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a restaurant and remember its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return errors.New("missing --name")
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			created, err := app.Client.RegisterRestaurant(ctx, name, phone, address)
			if err != nil {
				return err
			}
			if err := app.Session.SetRestaurantID(ctx, created.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restaurant registered: %s\n", created.ID)
			fmt.Fprintln(cmd.OutOrStdout(), "Next: cardapio users register --email <email>")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "restaurant name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	return cmd
}

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User commands",
	}
	cmd.AddCommand(newUsersRegisterCmd(app))
	return cmd
}

func newUsersRegisterCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a user under the stored restaurant",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("missing --email")
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			restaurantID, err := app.restaurantID(ctx)
			if err != nil {
				return err
			}
			if password == "" {
				pw, err := readPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			if err := app.Client.RegisterUser(ctx, restaurantID, email, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s registered.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
