package browse

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"storefront-cli/internal/model"

	"golang.org/x/text/cases"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// SortKeys lists the selector options in display order.
var SortKeys = []SortKey{SortNewest, SortPriceLow, SortPriceHigh, SortRating}

var ErrUnknownSortKey = errors.New("unknown sort key")

func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortNewest, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected newest|price-low|price-high|rating)", ErrUnknownSortKey, s)
}

func (k SortKey) Label() string {
	switch k {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortRating:
		return "Rating"
	default:
		return "Newest"
	}
}

// Next cycles through SortKeys.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// SortProducts returns a sorted copy; the input is never reordered.
// Ties keep their fetch order, and SortNewest is the fetch order itself.
func SortProducts(products []model.Product, key SortKey) []model.Product {
	out := slices.Clone(products)
	switch key {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmpFloat(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmpFloat(b.Price, a.Price) })
	case SortRating:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmpFloat(b.SortRating(), a.SortRating()) })
	}
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FilterProducts keeps products whose name or description contains query,
// compared case-insensitively. An empty query keeps everything.
func FilterProducts(products []model.Product, query string) []model.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(products)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) || strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// ComputeStats summarizes products: count, mean price rounded to cents (0 when empty),
// and how many are in stock (a missing flag counts as in stock).
func ComputeStats(products []model.Product) model.Stats {
	st := model.Stats{TotalProducts: len(products)}
	if len(products) == 0 {
		return st
	}
	sum := 0.0
	for _, p := range products {
		sum += p.Price
		if p.Available() {
			st.InStock++
		}
	}
	st.AveragePrice = math.Round(sum/float64(len(products))*100) / 100
	return st
}
