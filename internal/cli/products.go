package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cardapio-cli/internal/api"
	"cardapio-cli/internal/format"
	"cardapio-cli/internal/model"
)

func newProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Product commands",
	}
	cmd.AddCommand(newProductsShowCmd(app))
	cmd.AddCommand(newProductsCreateCmd(app))
	cmd.AddCommand(newProductsEditCmd(app))
	cmd.AddCommand(newProductsDeleteCmd(app))
	cmd.AddCommand(newProductsPauseCmd(app, true))
	cmd.AddCommand(newProductsPauseCmd(app, false))
	cmd.AddCommand(newProductsImageCmd(app))
	return cmd
}

func newProductsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.opCtx()
			defer cancel()

			p, err := app.Client.Product(ctx, args[0])
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("product %s not found", args[0])
				}
				return err
			}

			if app.asJSON {
				return format.WriteJSON(cmd.OutOrStdout(), p)
			}

			out := cmd.OutOrStdout()
			status := "active"
			if !p.Active {
				status = "paused"
			}
			fmt.Fprintf(out, "%s  (%s)\n", p.Name, p.ID)
			fmt.Fprintf(out, "  price:    %s\n", p.Price)
			fmt.Fprintf(out, "  status:   %s\n", status)
			if p.Description != "" {
				fmt.Fprintf(out, "  about:    %s\n", p.Description)
			}
			if p.CategoryName != "" || p.CategoryID != "" {
				fmt.Fprintf(out, "  category: %s (%s)\n", p.CategoryName, p.CategoryID)
			}
			if p.ImageURL != "" {
				fmt.Fprintf(out, "  image:    %s\n", app.Client.ResolveImageURL(p.ImageURL))
			}
			for _, comp := range p.Complements {
				fmt.Fprintf(out, "  + %s  %s\n", comp.Name, comp.Price)
			}
			return nil
		},
	}
}

func productDraftFlags(cmd *cobra.Command, name, description, price, categoryID *string) {
	cmd.Flags().StringVar(name, "name", "", "product name")
	cmd.Flags().StringVar(description, "description", "", "product description")
	cmd.Flags().StringVar(price, "price", "", `price, e.g. "12.50"`)
	cmd.Flags().StringVar(categoryID, "category", "", "owning category id")
}

func newProductsCreateCmd(app *App) *cobra.Command {
	var name, description, price, categoryID, imagePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return errors.New("missing --name")
			}
			parsedPrice, err := model.ParsePrice(price)
			if err != nil {
				return err
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			if strings.TrimSpace(categoryID) == "" {
				// A category picked in the console carries over once;
				// otherwise the flag is required.
				pre, preErr := app.Session.TakePreselectedCategory(ctx)
				if preErr != nil || pre == "" {
					return errors.New("missing --category")
				}
				categoryID = pre
			}

			restaurantID, err := app.restaurantID(ctx)
			if err != nil {
				return err
			}
			created, err := app.Client.CreateProduct(ctx, api.ProductDraft{
				RestaurantID: restaurantID,
				Name:         name,
				Description:  description,
				Price:        parsedPrice,
				CategoryID:   categoryID,
			}, imagePath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	productDraftFlags(cmd, &name, &description, &price, &categoryID)
	cmd.Flags().StringVar(&imagePath, "image", "", "path to an image file to attach")
	return cmd
}

func newProductsEditCmd(app *App) *cobra.Command {
	var name, description, price, categoryID string

	cmd := &cobra.Command{
		Use:   "edit <product-id>",
		Short: "Update a product's fields (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.opCtx()
			defer cancel()

			current, err := app.Client.Product(ctx, args[0])
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("product %s not found", args[0])
				}
				return err
			}

			draft := api.ProductDraft{
				Name:        current.Name,
				Description: current.Description,
				Price:       current.Price,
				CategoryID:  current.CategoryID,
			}
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("description") {
				draft.Description = description
			}
			if cmd.Flags().Changed("price") {
				parsed, err := model.ParsePrice(price)
				if err != nil {
					return err
				}
				draft.Price = parsed
			}
			if cmd.Flags().Changed("category") {
				draft.CategoryID = categoryID
			}

			if err := app.Client.UpdateProduct(ctx, args[0], draft); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product updated.")
			return nil
		},
	}

	productDraftFlags(cmd, &name, &description, &price, &categoryID)
	return cmd
}

func newProductsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.confirmDestructive(cmd, fmt.Sprintf("Delete product %s?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			ctx, cancel := app.opCtx()
			defer cancel()

			if err := app.Client.DeleteProduct(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product deleted.")
			return nil
		},
	}
}

func newProductsPauseCmd(app *App, pause bool) *cobra.Command {
	use, short := "pause <product-id>", "Hide a product from the menu"
	if !pause {
		use, short = "resume <product-id>", "Put a product back on the menu"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.opCtx()
			defer cancel()

			if err := app.Client.SetProductActive(ctx, args[0], !pause); err != nil {
				return err
			}
			if pause {
				fmt.Fprintln(cmd.OutOrStdout(), "Product paused.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Product active.")
			}
			return nil
		},
	}
}

func newProductsImageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Product image commands",
	}

	set := &cobra.Command{
		Use:   "set <product-id> <path>",
		Short: "Replace the product image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.opCtx()
			defer cancel()
			if err := app.Client.SetProductImage(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Image updated.")
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove the product image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.confirmDestructive(cmd, "Remove the product image?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			ctx, cancel := app.opCtx()
			defer cancel()
			if err := app.Client.RemoveProductImage(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Image removed.")
			return nil
		},
	}

	cmd.AddCommand(set)
	cmd.AddCommand(remove)
	return cmd
}
