package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cardapio-cli/internal/format"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category commands",
	}
	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesCreateCmd(app))
	cmd.AddCommand(newCategoriesRenameCmd(app))
	cmd.AddCommand(newCategoriesDeleteCmd(app))
	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with their products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.opCtx()
			defer cancel()

			restaurantID, err := app.restaurantID(ctx)
			if err != nil {
				return err
			}
			cats, err := app.Client.CategoriesWithProducts(ctx, restaurantID)
			if err != nil {
				return err
			}

			if app.asJSON {
				return format.WriteJSON(cmd.OutOrStdout(), cats)
			}

			out := cmd.OutOrStdout()
			for _, cat := range cats {
				fmt.Fprintf(out, "%s  (%s, %d products)\n", cat.Name, cat.ID, len(cat.Products))
				for _, p := range cat.Products {
					status := "active"
					if !p.Active {
						status = "paused"
					}
					fmt.Fprintf(out, "  - %-30s  %8s  %s  %s\n", p.Name, p.Price, status, p.ID)
				}
			}
			if len(cats) == 0 {
				fmt.Fprintln(out, "No categories yet. Create one with `cardapio categories create --name <name>`.")
			}
			return nil
		},
	}
}

func newCategoriesCreateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return errors.New("missing --name")
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			restaurantID, err := app.restaurantID(ctx)
			if err != nil {
				return err
			}
			created, err := app.Client.CreateCategory(ctx, restaurantID, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name")
	return cmd
}

func newCategoriesRenameCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <category-id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return errors.New("missing --name")
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			restaurantID, err := app.restaurantID(ctx)
			if err != nil {
				return err
			}
			if err := app.Client.RenameCategory(ctx, restaurantID, args[0], name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category renamed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new category name")
	return cmd
}

func newCategoriesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category (its products go with it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.confirmDestructive(cmd, fmt.Sprintf("Delete category %s and all of its products?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			restaurantID, err := app.restaurantID(ctx)
			if err != nil {
				return err
			}
			if err := app.Client.DeleteCategory(ctx, restaurantID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category deleted.")
			return nil
		},
	}
}
