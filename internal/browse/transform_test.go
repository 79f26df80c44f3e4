package browse

import (
	"errors"
	"testing"

	"storefront-cli/internal/model"
)

func TestSortProducts_PriceLowThenHighReverses(t *testing.T) {
	in := []model.Product{
		{ID: "a", Price: 30},
		{ID: "b", Price: 10},
		{ID: "c", Price: 20},
	}
	low := ids(SortProducts(in, SortPriceLow))
	high := ids(SortProducts(in, SortPriceHigh))
	if !equalIDs(low, []string{"b", "c", "a"}) {
		t.Fatalf("price-low = %v", low)
	}
	for i := range low {
		if low[i] != high[len(high)-1-i] {
			t.Fatalf("expected reversed order: low=%v high=%v", low, high)
		}
	}
	if got := ids(in); !equalIDs(got, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: %v", got)
	}
}

func TestSortProducts_StableTiesAndMissingValues(t *testing.T) {
	in := []model.Product{
		{ID: "nop"}, // price 0, no rating
		{ID: "x", Price: 5, Rating: fptr(4)},
		{ID: "y", Price: 5, Rating: fptr(4)},
		{ID: "z", Price: 1, Rating: fptr(5)},
	}
	if got := ids(SortProducts(in, SortPriceLow)); !equalIDs(got, []string{"nop", "z", "x", "y"}) {
		t.Fatalf("price-low = %v", got)
	}
	if got := ids(SortProducts(in, SortPriceHigh)); !equalIDs(got, []string{"x", "y", "z", "nop"}) {
		t.Fatalf("price-high = %v", got)
	}
	if got := ids(SortProducts(in, SortRating)); !equalIDs(got, []string{"z", "x", "y", "nop"}) {
		t.Fatalf("rating = %v", got)
	}
	if got := ids(SortProducts(in, SortNewest)); !equalIDs(got, []string{"nop", "x", "y", "z"}) {
		t.Fatalf("newest = %v", got)
	}
}

func TestFilterProducts(t *testing.T) {
	in := []model.Product{
		{ID: "1", Name: "TMT Bar Fe 500", Description: "Thermo mechanically treated"},
		{ID: "2", Name: "Binding Wire", Description: "annealed steel wire"},
		{ID: "3", Name: "MS Angle"},
	}
	if got := ids(FilterProducts(in, "")); !equalIDs(got, []string{"1", "2", "3"}) {
		t.Fatalf("empty query must return everything; got %v", got)
	}
	if got := ids(FilterProducts(in, "WIRE")); !equalIDs(got, []string{"2"}) {
		t.Fatalf("name match = %v", got)
	}
	if got := ids(FilterProducts(in, "treated")); !equalIDs(got, []string{"1"}) {
		t.Fatalf("description match = %v", got)
	}
	if got := FilterProducts(in, "cement"); len(got) != 0 {
		t.Fatalf("expected no matches; got %v", ids(got))
	}
}

func TestComputeStats(t *testing.T) {
	st := ComputeStats([]model.Product{{Price: 10}, {Price: 20}, {Price: 30, InStock: bptr(false)}})
	if st.TotalProducts != 3 || st.AveragePrice != 20.00 || st.InStock != 2 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if empty := ComputeStats(nil); empty.TotalProducts != 0 || empty.AveragePrice != 0 || empty.InStock != 0 {
		t.Fatalf("unexpected empty stats: %+v", empty)
	}
	if got := ComputeStats([]model.Product{{Price: 10}, {Price: 10}, {Price: 10.01}}).AveragePrice; got != 10.00 {
		t.Fatalf("expected rounding to cents; got %v", got)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		got, err := ParseSortKey(" " + string(k) + " ")
		if err != nil || got != k {
			t.Fatalf("ParseSortKey(%q) = %q, %v", k, got, err)
		}
	}
	if got, err := ParseSortKey(""); err != nil || got != SortNewest {
		t.Fatalf("expected newest default; got %q %v", got, err)
	}
	if _, err := ParseSortKey("popular"); !errors.Is(err, ErrUnknownSortKey) {
		t.Fatalf("expected ErrUnknownSortKey; got %v", err)
	}
	if SortRating.Next() != SortNewest || SortNewest.Next() != SortPriceLow {
		t.Fatalf("unexpected sort cycle")
	}
}
