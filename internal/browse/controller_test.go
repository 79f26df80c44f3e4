package browse

import (
	"context"
	"errors"
	"testing"

	"storefront-cli/internal/model"
	"storefront-cli/internal/store"

	"go.uber.org/zap/zaptest"
)

type fakeSource struct {
	products []model.Product
	err      error
	calls    []string
}

func (f *fakeSource) ListCategory(_ context.Context, category string) ([]model.Product, error) {
	f.calls = append(f.calls, category)
	return f.products, f.err
}

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func ids(ps []model.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func cardIDs(g Grid) []string {
	out := make([]string, 0, len(g.Cards))
	for _, c := range g.Cards {
		out = append(out, c.Product.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newController(t *testing.T, src Source) (*Controller, *store.Wishlist) {
	t.Helper()
	w := store.NewWishlist(store.NewMemoryKV(), nil)
	if err := w.Load(context.Background()); err != nil {
		t.Fatalf("wishlist load: %v", err)
	}
	return New("cement", src, w, zaptest.NewLogger(t)), w
}

func TestController_CementExample(t *testing.T) {
	src := &fakeSource{products: []model.Product{
		{ID: "a", Name: "OPC 53", Price: 350},
		{ID: "b", Name: "PPC", Price: 300},
	}}
	c, _ := newController(t, src)

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(src.calls) != 1 || src.calls[0] != "cement" {
		t.Fatalf("expected one fetch for cement; got %v", src.calls)
	}

	c.SetSort(SortPriceLow)
	if got := cardIDs(c.Grid()); !equalIDs(got, []string{"b", "a"}) {
		t.Fatalf("price-low order = %v, want [b a]", got)
	}

	st := c.Stats()
	if st.TotalProducts != 2 || st.AveragePrice != 325.00 || st.InStock != 2 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestController_EmptyFetchShowsEmptyState(t *testing.T) {
	c, _ := newController(t, &fakeSource{products: []model.Product{}})
	if c.Grid().State != GridLoading {
		t.Fatalf("expected loading state before fetch")
	}
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	g := c.Grid()
	if g.State != GridEmpty || g.Title != EmptyTitle {
		t.Fatalf("expected empty state; got %+v", g)
	}
}

func TestController_FetchFailureShowsErrorState(t *testing.T) {
	boom := errors.New("connection refused")
	c, _ := newController(t, &fakeSource{err: boom})

	if err := c.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected load error; got %v", err)
	}
	g := c.Grid()
	if g.State != GridError || g.Title != ErrorTitle {
		t.Fatalf("expected error state; got %+v", g)
	}
	if c.Phase() != PhaseFailed || !errors.Is(c.Err(), boom) {
		t.Fatalf("expected failed phase; got %v %v", c.Phase(), c.Err())
	}
	// Searching cannot turn a failed load into "no products".
	c.Search("anything")
	if c.Grid().State != GridError {
		t.Fatalf("expected error state to persist across search")
	}
	if st := c.Stats(); st.TotalProducts != 0 || st.AveragePrice != 0 {
		t.Fatalf("expected zero stats after failure; got %+v", st)
	}
}

func TestController_SearchAndSortDeriveFromFetchedList(t *testing.T) {
	src := &fakeSource{products: []model.Product{
		{ID: "1", Name: "Wall Putty", Description: "white cement based", Price: 500},
		{ID: "2", Name: "OPC 43", Price: 320},
		{ID: "3", Name: "White Cement", Price: 900},
		{ID: "4", Name: "PPC", Description: "Portland Pozzolana", Price: 300},
	}}
	c, _ := newController(t, src)
	_ = c.Load(context.Background())

	c.Search("CEMENT")
	if got := ids(c.Visible()); !equalIDs(got, []string{"1", "3"}) {
		t.Fatalf("search = %v, want [1 3]", got)
	}

	c.SetSort(SortPriceHigh)
	if got := ids(c.Visible()); !equalIDs(got, []string{"3", "1"}) {
		t.Fatalf("search+price-high = %v, want [3 1]", got)
	}

	c.Search("")
	if got := ids(c.Visible()); !equalIDs(got, []string{"3", "1", "2", "4"}) {
		t.Fatalf("cleared search with price-high = %v", got)
	}

	c.SetSort(SortNewest)
	if got := ids(c.Visible()); !equalIDs(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("newest = %v, want fetch order", got)
	}
	if got := ids(c.Products()); !equalIDs(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("fetched list was mutated: %v", got)
	}
}

func TestController_ToggleWishlistReflectsInCards(t *testing.T) {
	src := &fakeSource{products: []model.Product{{ID: "a", Name: "OPC 53", Price: 350}}}
	c, w := newController(t, src)
	_ = c.Load(context.Background())

	added, err := c.ToggleWishlist(context.Background(), "a")
	if err != nil || !added {
		t.Fatalf("toggle: added=%v err=%v", added, err)
	}
	if g := c.Grid(); !g.Cards[0].Wishlisted {
		t.Fatalf("expected card to reflect wishlist membership")
	}
	if !w.Has("a") {
		t.Fatalf("expected wishlist to hold a")
	}

	added, err = c.ToggleWishlist(context.Background(), "a")
	if err != nil || added {
		t.Fatalf("second toggle: added=%v err=%v", added, err)
	}
	if g := c.Grid(); g.Cards[0].Wishlisted {
		t.Fatalf("expected membership removed after second toggle")
	}

	// Unknown ids still toggle and persist.
	if added, err := c.ToggleWishlist(context.Background(), "ghost"); err != nil || !added || !w.Has("ghost") {
		t.Fatalf("unknown id toggle: added=%v err=%v", added, err)
	}
}

func TestController_DetailAndAddToCart(t *testing.T) {
	src := &fakeSource{products: []model.Product{
		{ID: "a", Name: "OPC 53", Price: 350},
		{ID: "b", Name: "PPC", Price: 300},
	}}
	c, _ := newController(t, src)
	_ = c.Load(context.Background())

	if _, ok := c.AddToCart(); ok {
		t.Fatalf("add to cart without selection must be a no-op")
	}
	if c.OpenDetail("missing") {
		t.Fatalf("expected unknown id not to open")
	}

	if !c.OpenDetail("a") || !c.OpenDetail("b") {
		t.Fatalf("expected detail to open")
	}
	sel, ok := c.Selected()
	if !ok || sel.ID != "b" {
		t.Fatalf("expected only the latest selection; got %+v ok=%v", sel, ok)
	}

	c.CloseDetail()
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selection after close")
	}
	if len(c.Products()) != 2 {
		t.Fatalf("closing must not mutate data")
	}

	c.OpenDetail("a")
	ack, ok := c.AddToCart()
	if !ok || ack.ProductID != "a" || ack.Message != `Added "OPC 53" to cart!` {
		t.Fatalf("unexpected ack: %+v ok=%v", ack, ok)
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected add to cart to close the detail")
	}
}

func TestController_SetCategoryResets(t *testing.T) {
	src := &fakeSource{products: []model.Product{{ID: "a", Name: "OPC 53", Price: 350}}}
	c, _ := newController(t, src)
	_ = c.Load(context.Background())
	c.SetSort(SortRating)
	c.OpenDetail("a")

	c.SetCategory("bricks")
	if c.Grid().State != GridLoading || len(c.Products()) != 0 {
		t.Fatalf("expected a fresh loading state")
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected selection dropped")
	}
	if c.SortKey() != SortRating {
		t.Fatalf("expected sort to carry over")
	}
	_ = c.Load(context.Background())
	if src.calls[len(src.calls)-1] != "bricks" {
		t.Fatalf("expected fetch for bricks; got %v", src.calls)
	}
}

func TestController_SetSortRejectsUnknown(t *testing.T) {
	c, _ := newController(t, &fakeSource{})
	c.SetSort("cheapest")
	if c.SortKey() != SortNewest {
		t.Fatalf("expected fallback to newest; got %q", c.SortKey())
	}
}
