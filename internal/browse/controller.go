package browse

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"storefront-cli/internal/model"

	"go.uber.org/zap"
)

// Source fetches one category's products.
type Source interface {
	ListCategory(ctx context.Context, category string) ([]model.Product, error)
}

// WishlistStore is the persisted wishlist the controller writes through to.
type WishlistStore interface {
	Has(id string) bool
	Toggle(ctx context.Context, id string) (bool, error)
}

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

type GridState int

const (
	GridLoading GridState = iota
	GridError
	GridEmpty
	GridProducts
)

const (
	LoadingMessage = "Loading products..."

	ErrorTitle = "Failed to Load Products"
	ErrorHint  = "Please try again later"

	EmptyTitle = "No Products Found"
	EmptyHint  = "Try adjusting your filters"
)

// Card is one rendered product plus its wishlist membership at render time.
type Card struct {
	Product    model.Product
	Wishlisted bool
}

// Grid is what the product area shows: either cards or exactly one status message.
type Grid struct {
	State GridState
	Cards []Card
	Title string
	Hint  string
}

// CartAck acknowledges an add-to-cart action. No cart state is kept.
type CartAck struct {
	ProductID string
	Name      string
	Message   string
}

// Controller owns the browsing state of one category screen.
//
// The visible list is always derived from the fetched list: filter by query, then a
// stable sort by key. Neither transform ever sees the other's previous output.
type Controller struct {
	source   Source
	wishlist WishlistStore
	logger   *zap.Logger

	category string
	all      []model.Product
	phase    Phase
	loadErr  error

	sortKey SortKey
	query   string

	selected *model.Product
}

func New(category string, source Source, wishlist WishlistStore, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		source:   source,
		wishlist: wishlist,
		logger:   logger,
		category: strings.TrimSpace(category),
		sortKey:  SortNewest,
	}
}

func (c *Controller) Category() string { return c.category }

// SetCategory switches to another category and drops the fetched list and selection.
// Sort key and query carry over.
func (c *Controller) SetCategory(category string) {
	c.category = strings.TrimSpace(category)
	c.all = nil
	c.phase = PhaseLoading
	c.loadErr = nil
	c.selected = nil
}

// Load fetches the active category once and applies the outcome. There is no retry.
func (c *Controller) Load(ctx context.Context) error {
	if c.source == nil {
		err := errors.New("browse: no product source")
		c.Apply(nil, err)
		return err
	}
	products, err := c.source.ListCategory(ctx, c.category)
	c.Apply(products, err)
	return err
}

// Apply records a fetch outcome. Any error is terminal for this load.
func (c *Controller) Apply(products []model.Product, err error) {
	c.selected = nil
	if err != nil {
		c.all = nil
		c.phase = PhaseFailed
		c.loadErr = err
		c.logger.Error("error loading products", zap.String("category", c.category), zap.Error(err))
		return
	}
	c.all = slices.Clone(products)
	if c.all == nil {
		c.all = []model.Product{}
	}
	c.phase = PhaseReady
	c.loadErr = nil
	c.logger.Debug("products applied", zap.String("category", c.category), zap.Int("count", len(c.all)))
}

func (c *Controller) Phase() Phase { return c.phase }
func (c *Controller) Err() error   { return c.loadErr }

// Products returns a copy of the fetched list in fetch order.
func (c *Controller) Products() []model.Product { return slices.Clone(c.all) }

func (c *Controller) SortKey() SortKey { return c.sortKey }
func (c *Controller) Query() string    { return c.query }

func (c *Controller) SetSort(key SortKey) {
	if !slices.Contains(SortKeys, key) {
		key = SortNewest
	}
	c.sortKey = key
}

func (c *Controller) Search(query string) {
	c.query = query
}

// Visible is the list currently on screen.
func (c *Controller) Visible() []model.Product {
	return SortProducts(FilterProducts(c.all, c.query), c.sortKey)
}

// Render builds the grid for products: one card each, or the empty state.
func (c *Controller) Render(products []model.Product) Grid {
	if len(products) == 0 {
		return Grid{State: GridEmpty, Title: EmptyTitle, Hint: EmptyHint}
	}
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, Card{Product: p, Wishlisted: c.IsWishlisted(p.ID)})
	}
	return Grid{State: GridProducts, Cards: cards}
}

// Grid renders the current state; a failed load never looks like an empty category.
func (c *Controller) Grid() Grid {
	switch c.phase {
	case PhaseLoading:
		return Grid{State: GridLoading, Title: LoadingMessage}
	case PhaseFailed:
		return Grid{State: GridError, Title: ErrorTitle, Hint: ErrorHint}
	}
	return c.Render(c.Visible())
}

// Stats summarizes the visible list. A failed or pending load has no products.
func (c *Controller) Stats() model.Stats {
	if c.phase != PhaseReady {
		return ComputeStats(nil)
	}
	return ComputeStats(c.Visible())
}

func (c *Controller) IsWishlisted(id string) bool {
	return c.wishlist != nil && c.wishlist.Has(id)
}

// ToggleWishlist flips membership of id and persists it before returning.
func (c *Controller) ToggleWishlist(ctx context.Context, id string) (bool, error) {
	if c.wishlist == nil {
		return false, errors.New("browse: no wishlist store")
	}
	added, err := c.wishlist.Toggle(ctx, id)
	if err != nil {
		c.logger.Error("wishlist toggle failed", zap.String("productId", id), zap.Error(err))
		return added, err
	}
	return added, nil
}

// OpenDetail selects the fetched product with id. Only one product is selected at a time.
func (c *Controller) OpenDetail(id string) bool {
	for _, p := range c.all {
		if p.ID == id {
			sel := p
			c.selected = &sel
			return true
		}
	}
	return false
}

func (c *Controller) CloseDetail() { c.selected = nil }

func (c *Controller) Selected() (model.Product, bool) {
	if c.selected == nil {
		return model.Product{}, false
	}
	return *c.selected, true
}

// AddToCart acknowledges the selected product and closes the detail overlay.
// Without a selection it does nothing.
func (c *Controller) AddToCart() (CartAck, bool) {
	if c.selected == nil {
		return CartAck{}, false
	}
	p := *c.selected
	c.selected = nil
	c.logger.Info("added to cart", zap.String("category", c.category), zap.String("productId", p.ID))
	return CartAck{
		ProductID: p.ID,
		Name:      p.Name,
		Message:   fmt.Sprintf("Added \"%s\" to cart!", p.Name),
	}, true
}
