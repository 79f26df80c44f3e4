package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storefront-cli/internal/format"
	"storefront-cli/internal/logging"
	"storefront-cli/internal/productapi"
	"storefront-cli/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliDefaultLogLevel keeps scripted output quiet unless asked otherwise.
const cliDefaultLogLevel = "warn"

type App struct {
	API           string
	WishlistStore string
	PrettyJSON    bool
	Format        string
	LogLevel      string

	cfg *store.GlobalConfig
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "storefront",
		Short:        "Storefront category browser (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the last (or default) category
  storefront

  # Open a category directly (shortcut for: storefront browse <category-id>)
  storefront bricks

  # Scriptable listings
  storefront products cement --sort price-low
  storefront stats plumbing --query pipe
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runBrowse(cmd, app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.API, "api", envOr("STOREFRONT_API", ""), "Product API base URL (default: config apiBase or "+productapi.DefaultBaseURL+")")
	cmd.PersistentFlags().StringVar(&app.WishlistStore, "wishlist-store", envOr("STOREFRONT_WISHLIST_STORE", ""), "Wishlist backend (sqlite|file|memory)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("STOREFRONT_FORMAT", "json"), "Output format (json|table)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("STOREFRONT_LOG_LEVEL", ""), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newProductsCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newWishlistCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) config() *store.GlobalConfig {
	if app.cfg == nil {
		return &store.GlobalConfig{}
	}
	return app.cfg
}

// apiBase resolves flag/env > config file > built-in default.
func (app *App) apiBase() string {
	if v := strings.TrimSpace(app.API); v != "" {
		return v
	}
	if v := strings.TrimSpace(app.config().APIBase); v != "" {
		return v
	}
	return productapi.DefaultBaseURL
}

func (app *App) backend() (store.Backend, error) {
	v := strings.TrimSpace(app.WishlistStore)
	if v == "" {
		v = app.config().WishlistBackend
	}
	return store.ParseBackend(v)
}

func (app *App) client(logger *zap.Logger, limit int) *productapi.Client {
	if limit <= 0 {
		limit = app.config().Limit
	}
	return productapi.NewClient(app.apiBase(), productapi.WithLimit(limit), productapi.WithLogger(logger))
}

// cliLogger writes JSON logs to the command's stderr.
func (app *App) cliLogger(cmd *cobra.Command) *zap.Logger {
	level := app.LogLevel
	if strings.TrimSpace(level) == "" {
		level = cliDefaultLogLevel
	}
	l, err := logging.New(logging.Options{Level: level, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// tuiLogger writes to <config dir>/storefront.log since the TUI owns the terminal.
func (app *App) tuiLogger() *zap.Logger {
	dir, err := store.ConfigDir()
	if err != nil {
		return zap.NewNop()
	}
	l, err := logging.New(logging.Options{Level: app.LogLevel, Path: filepath.Join(dir, logging.LogFileName)})
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// openWishlist opens the configured backend and loads the stored set.
// Callers must Close the returned KV.
func (app *App) openWishlist(ctx context.Context, logger *zap.Logger) (*store.Wishlist, store.KV, error) {
	backend, err := app.backend()
	if err != nil {
		return nil, nil, err
	}
	dir, err := store.ConfigDir()
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.OpenKV(ctx, backend, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open wishlist store (%s): %w", backend, err)
	}
	w := store.NewWishlist(kv, logger)
	if err := w.Load(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	return w, kv, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
