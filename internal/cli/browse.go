package cli

import (
	"strings"

	"storefront-cli/internal/browse"
	"storefront-cli/internal/catalog"
	"storefront-cli/internal/store"
	"storefront-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [category]",
		Short: "Browse a category interactively",
		Long: strings.TrimSpace(`
Opens the full-screen product browser.

Without a category, the last browsed category is reopened (then config defaultCategory,
then "cement"). The last sort order and search are restored too.
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return runBrowse(cmd, app, category)
		},
	}
}

func runBrowse(cmd *cobra.Command, app *App, category string) error {
	var st *store.TUIState
	if s, err := store.StateDir("").LoadTUIState(); err == nil {
		st = s
	} else {
		st = &store.TUIState{}
	}

	if strings.TrimSpace(category) != "" {
		c, err := catalog.MustLookup(category)
		if err != nil {
			return writeErr(cmd, err)
		}
		category = c.ID
	} else {
		category = firstKnownCategory(st.Category, app.config().DefaultCategory)
	}

	sortKey, err := browse.ParseSortKey(st.Sort)
	if err != nil {
		sortKey = browse.SortNewest
	}

	logger := app.tuiLogger()
	defer func() { _ = logger.Sync() }()

	wishlist, kv, err := app.openWishlist(cmd.Context(), logger)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer kv.Close()

	logger.Info("browse started", zap.String("category", category), zap.String("api", app.apiBase()))
	return tui.Run(cmd.Context(), tui.Options{
		Source:   app.client(logger, 0),
		Wishlist: wishlist,
		Logger:   logger,
		Category: category,
		Sort:     sortKey,
		Query:    st.Query,
		Profile:  app.config().Profile(),
	})
}

func firstKnownCategory(ids ...string) string {
	for _, id := range ids {
		if c, ok := catalog.Lookup(id); ok {
			return c.ID
		}
	}
	return catalog.DefaultID
}
