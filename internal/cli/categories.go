package cli

import (
	"storefront-cli/internal/catalog"

	"github.com/spf13/cobra"
)

type categoryRows []catalog.Category

func (categoryRows) TableHeaders() []string { return []string{"ID", "TITLE", "DESCRIPTION"} }
func (rs categoryRows) TableRows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, c := range rs {
		out = append(out, []string{c.ID, c.Emoji + " " + c.Title, c.Description})
	}
	return out
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List storefront categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{
				"data":   categoryRows(catalog.All()),
				"_hints": []string{"storefront products <category-id>", "storefront <category-id>"},
			})
		},
	}
}
