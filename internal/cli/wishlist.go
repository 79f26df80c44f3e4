package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

type wishlistRows []string

func (wishlistRows) TableHeaders() []string { return []string{"PRODUCT ID"} }
func (rs wishlistRows) TableRows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, id := range rs {
		out = append(out, []string{id})
	}
	return out
}

func newWishlistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Inspect or change the saved wishlist",
	}
	cmd.AddCommand(newWishlistListCmd(app))
	cmd.AddCommand(newWishlistToggleCmd(app))
	cmd.AddCommand(newWishlistClearCmd(app))
	return cmd
}

func newWishlistListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wishlisted product ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, kv, err := app.openWishlist(cmd.Context(), app.cliLogger(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			ids := w.IDs()
			return writeOut(cmd, app, map[string]any{
				"data": wishlistRows(ids),
				"meta": map[string]any{"count": len(ids)},
			})
		},
	}
}

func newWishlistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add a product to the wishlist, or remove it if present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			w, kv, err := app.openWishlist(cmd.Context(), app.cliLogger(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			added, err := w.Toggle(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"id": id, "wishlisted": added},
				"meta": map[string]any{"count": w.Len()},
			})
		},
	}
}

func newWishlistClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every product from the wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, kv, err := app.openWishlist(cmd.Context(), app.cliLogger(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			removed := w.Len()
			if err := w.Clear(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": removed}})
		},
	}
}
