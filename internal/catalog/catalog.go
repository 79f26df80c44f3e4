package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category is one storefront section (a fixed partition of the catalog).
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	// Page is the storefront page that historically served this category.
	Page string `json:"page"`
	// Gradient holds the header's start and end colors (hex).
	Gradient [2]string `json:"gradient"`
}

var categories = []Category{
	{
		ID:          "cement",
		Title:       "Cement Products",
		Emoji:       "🏗️",
		Description: "Premium Quality Cement for All Your Construction Needs",
		Page:        "cement.html",
		Gradient:    [2]string{"#667eea", "#764ba2"},
	},
	{
		ID:          "bricks",
		Title:       "Bricks & Blocks",
		Emoji:       "🧱",
		Description: "High-Quality Bricks for Durable Construction",
		Page:        "bricks.html",
		Gradient:    [2]string{"#f093fb", "#f5576c"},
	},
	{
		ID:          "building-materials",
		Title:       "Building Materials",
		Emoji:       "🏢",
		Description: "Complete Range of Building Supplies & Materials",
		Page:        "building-materials.html",
		Gradient:    [2]string{"#4facfe", "#00f2fe"},
	},
	{
		ID:          "iron-steel",
		Title:       "Iron & Steel",
		Emoji:       "⚙️",
		Description: "Durable Iron & Steel Products for Construction",
		Page:        "iron-steel.html",
		Gradient:    [2]string{"#fa709a", "#fee140"},
	},
	{
		ID:          "plumbing",
		Title:       "Plumbing Supplies",
		Emoji:       "🔧",
		Description: "Premium Plumbing Materials & Fixtures",
		Page:        "plumbing.html",
		Gradient:    [2]string{"#30cfd0", "#330867"},
	},
	{
		ID:          "home-interior",
		Title:       "Home Interior",
		Emoji:       "🏠",
		Description: "Beautiful Home Interior Products & Solutions",
		Page:        "home-interior.html",
		Gradient:    [2]string{"#a8edea", "#fed6e3"},
	},
}

// DefaultID is the category opened when nothing else is configured.
const DefaultID = "cement"

// All returns the categories in navigation order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func IDs() []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.ID)
	}
	return out
}

// Lookup finds a category by id (case-insensitive).
func Lookup(id string) (Category, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// MustLookup is Lookup with an error suitable for CLI output.
func MustLookup(id string) (Category, error) {
	c, ok := Lookup(id)
	if !ok {
		return Category{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCategory, id, strings.Join(IDs(), ", "))
	}
	return c, nil
}

// Next returns the category after id, wrapping around.
func Next(id string) Category { return step(id, 1) }

// Prev returns the category before id, wrapping around.
func Prev(id string) Category { return step(id, -1) }

func step(id string, delta int) Category {
	idx := 0
	for i, c := range categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	n := len(categories)
	return categories[((idx+delta)%n+n)%n]
}

// Blend returns the header gradient color at position t in [0,1] as a hex string.
func (c Category) Blend(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	from, err1 := colorful.Hex(c.Gradient[0])
	to, err2 := colorful.Hex(c.Gradient[1])
	if err1 != nil || err2 != nil {
		return c.Gradient[0]
	}
	switch t {
	case 0:
		return from.Hex()
	case 1:
		return to.Hex()
	}
	return from.BlendLab(to, t).Clamped().Hex()
}
