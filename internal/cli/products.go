package cli

import (
	"fmt"
	"strconv"

	"storefront-cli/internal/browse"
	"storefront-cli/internal/catalog"
	"storefront-cli/internal/format"
	"storefront-cli/internal/model"

	"github.com/spf13/cobra"
)

type productRow struct {
	model.Product
	Wishlisted bool `json:"wishlisted"`
}

type productRows []productRow

func (productRows) TableHeaders() []string {
	return []string{"ID", "NAME", "PRICE", "WAS", "DISCOUNT", "RATING", "STOCK", "WISHLIST"}
}

func (rs productRows) TableRows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, r := range rs {
		was := ""
		if r.HasMarkdown() {
			was = format.Price(r.ListPrice())
		}
		stock := "in stock"
		if !r.Available() {
			stock = "out of stock"
		}
		heart := ""
		if r.Wishlisted {
			heart = "♥"
		}
		out = append(out, []string{
			r.ID,
			r.Name,
			format.Price(r.Price),
			was,
			format.Discount(r.DiscountPercent),
			strconv.FormatFloat(r.DisplayRating(), 'f', 1, 64),
			stock,
			heart,
		})
	}
	return out
}

type statsView model.Stats

func (statsView) TableHeaders() []string { return []string{"TOTAL PRODUCTS", "AVERAGE PRICE", "IN STOCK"} }
func (s statsView) TableRows() [][]string {
	return [][]string{{strconv.Itoa(s.TotalProducts), format.Price(s.AveragePrice), strconv.Itoa(s.InStock)}}
}

type listOptions struct {
	sort  string
	query string
	limit int
}

// loadCategory runs one controller load with the requested sort and search applied.
// A failed load is returned as an error; an empty category is a ready controller with no cards.
func loadCategory(cmd *cobra.Command, app *App, categoryArg string, opts listOptions) (*browse.Controller, catalog.Category, func(), error) {
	cat, err := catalog.MustLookup(categoryArg)
	if err != nil {
		return nil, catalog.Category{}, nil, err
	}
	key, err := browse.ParseSortKey(opts.sort)
	if err != nil {
		return nil, cat, nil, err
	}

	logger := app.cliLogger(cmd)
	wishlist, kv, err := app.openWishlist(cmd.Context(), logger)
	if err != nil {
		return nil, cat, nil, err
	}
	closeFn := func() {
		_ = kv.Close()
		_ = logger.Sync()
	}

	ctrl := browse.New(cat.ID, app.client(logger, opts.limit), wishlist, logger)
	ctrl.SetSort(key)
	ctrl.Search(opts.query)
	if err := ctrl.Load(cmd.Context()); err != nil {
		closeFn()
		return nil, cat, nil, fmt.Errorf("%s: %w", browse.ErrorTitle, err)
	}
	return ctrl, cat, closeFn, nil
}

func newProductsCmd(app *App) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "products <category>",
		Short: "List a category's products (sorted/filtered like the browser)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cat, closeFn, err := loadCategory(cmd, app, args[0], opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			g := ctrl.Grid()
			rows := make(productRows, 0, len(g.Cards))
			for _, c := range g.Cards {
				rows = append(rows, productRow{Product: c.Product, Wishlisted: c.Wishlisted})
			}

			meta := map[string]any{
				"category": cat.ID,
				"title":    cat.Title,
				"sort":     string(ctrl.SortKey()),
				"query":    ctrl.Query(),
				"count":    len(rows),
				"fetched":  len(ctrl.Products()),
				"stats":    ctrl.Stats(),
			}
			if g.State == browse.GridEmpty {
				meta["message"] = g.Title
				meta["hint"] = g.Hint
			}
			hints := []string{
				"storefront stats " + cat.ID,
				"storefront wishlist toggle <product-id>",
			}
			return writeOut(cmd, app, map[string]any{"data": rows, "meta": meta, "_hints": hints})
		},
	}

	cmd.Flags().StringVar(&opts.sort, "sort", "newest", "Sort order (newest|price-low|price-high|rating)")
	cmd.Flags().StringVar(&opts.query, "query", "", "Case-insensitive search over name and description")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum products to request (0 = config limit or server default)")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "stats <category>",
		Short: "Summarize a category (total, average price, in stock)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cat, closeFn, err := loadCategory(cmd, app, args[0], opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			return writeOut(cmd, app, map[string]any{
				"data": statsView(ctrl.Stats()),
				"meta": map[string]any{"category": cat.ID, "query": ctrl.Query()},
			})
		},
	}

	cmd.Flags().StringVar(&opts.query, "query", "", "Only count products matching this search")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum products to request (0 = config limit or server default)")

	return cmd
}
