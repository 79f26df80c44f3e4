package tui

import (
	"context"
	"strings"
	"time"

	"storefront-cli/internal/browse"
	"storefront-cli/internal/catalog"
	"storefront-cli/internal/model"
	"storefront-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const flashDuration = 2500 * time.Millisecond

type modalKind int

const (
	modalNone modalKind = iota
	modalDetail
	modalHelp
)

// productsLoadedMsg carries one fetch outcome. seq identifies the activation it
// belongs to; results for an older activation are dropped.
type productsLoadedMsg struct {
	seq      int
	category string
	products []model.Product
	err      error
}

type flashDoneMsg struct{ seq int }

// Options configures the interactive browser.
type Options struct {
	Source   browse.Source
	Wishlist browse.WishlistStore
	Logger   *zap.Logger

	Category string
	Sort     browse.SortKey
	Query    string

	// StateDir receives tui_state.json on exit. The zero value is the config dir.
	StateDir store.StateDir
	// Profile is the appearance profile ("default", "mono").
	Profile string
}

type appModel struct {
	ctx      context.Context
	ctrl     *browse.Controller
	source   browse.Source
	logger   *zap.Logger
	stateDir store.StateDir

	width  int
	height int

	list    list.Model
	spinner spinner.Model
	search  textinput.Model
	detail  viewport.Model
	help    help.Model
	keys    keyMap

	searching bool
	modal     modalKind

	loadSeq int

	flash    string
	flashErr bool
	flashSeq int
}

func newAppModel(ctx context.Context, opts Options) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, ok := catalog.Lookup(opts.Category)
	if !ok {
		cat, _ = catalog.Lookup(catalog.DefaultID)
	}

	ctrl := browse.New(cat.ID, opts.Source, opts.Wishlist, logger)
	ctrl.SetSort(opts.Sort)
	ctrl.Search(opts.Query)

	l := list.New([]list.Item{}, newCardDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search products..."
	ti.CharLimit = 120
	ti.SetValue(opts.Query)

	vp := viewport.New(60, 20)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorSurfaceFg).Bold(true)
	h.Styles.ShortDesc = styleMuted()
	h.Styles.ShortSeparator = styleMuted()

	return appModel{
		ctx:      ctx,
		ctrl:     ctrl,
		source:   opts.Source,
		logger:   logger,
		stateDir: opts.StateDir,
		list:     l,
		spinner:  sp,
		search:   ti,
		detail:   vp,
		help:     h,
		keys:     keys,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m appModel) category() catalog.Category {
	c, ok := catalog.Lookup(m.ctrl.Category())
	if !ok {
		return catalog.Category{ID: m.ctrl.Category(), Title: m.ctrl.Category()}
	}
	return c
}

// fetchCmd runs one load for the current activation off the update loop.
func (m appModel) fetchCmd() tea.Cmd {
	seq := m.loadSeq
	category := m.ctrl.Category()
	src := m.source
	ctx := m.ctx
	return func() tea.Msg {
		if src == nil {
			return productsLoadedMsg{seq: seq, category: category, err: errNoSource}
		}
		products, err := src.ListCategory(ctx, category)
		return productsLoadedMsg{seq: seq, category: category, products: products, err: err}
	}
}

// switchCategory activates another category and starts exactly one fetch for it.
func (m *appModel) switchCategory(c catalog.Category) tea.Cmd {
	m.ctrl.SetCategory(c.ID)
	m.loadSeq++
	m.modal = modalNone
	m.refreshList()
	m.logger.Debug("category activated", zap.String("category", c.ID))
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// refreshList rebuilds list items from the controller, keeping the highlighted
// product when it is still visible.
func (m *appModel) refreshList() {
	prev := ""
	if it, ok := m.list.SelectedItem().(productItem); ok {
		prev = it.card.Product.ID
	}

	g := m.ctrl.Grid()
	fallback := m.category().Title
	items := make([]list.Item, 0, len(g.Cards))
	sel := 0
	for i, c := range g.Cards {
		items = append(items, productItem{card: c, category: fallback})
		if c.Product.ID == prev {
			sel = i
		}
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(sel)
	}
}

func (m *appModel) selectedProduct() (model.Product, bool) {
	it, ok := m.list.SelectedItem().(productItem)
	if !ok {
		return model.Product{}, false
	}
	return it.card.Product, true
}

func (m *appModel) setFlash(msg string, isErr bool) tea.Cmd {
	m.flash = msg
	m.flashErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m *appModel) saveState() {
	st := &store.TUIState{
		Version:  1,
		Category: m.ctrl.Category(),
		Sort:     string(m.ctrl.SortKey()),
		Query:    strings.TrimSpace(m.ctrl.Query()),
	}
	if err := m.stateDir.SaveTUIState(st); err != nil {
		m.logger.Warn("save tui state failed", zap.Error(err))
	}
}

// resize distributes the window between chrome, the card list and the overlay.
func (m *appModel) resize() {
	w := m.width
	if w <= 0 {
		w = 80
	}
	listH := m.height - chromeHeight
	if listH < 6 {
		listH = 6
	}
	m.list.SetSize(w-2*outerMargin, listH)
	m.help.Width = w

	ow, oh := overlaySize(m.width, m.height)
	m.detail.Width = ow - overlayFrame
	m.detail.Height = oh - overlayFrame - 2
	if m.detail.Width < 10 {
		m.detail.Width = 10
	}
	if m.detail.Height < 3 {
		m.detail.Height = 3
	}
}
