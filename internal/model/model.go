package model

const (
	// DefaultRating is shown for products the backend has not rated yet.
	DefaultRating = 4.5

	PlaceholderImageURL = "https://via.placeholder.com/280x250"
	DetailImageURL      = "https://via.placeholder.com/600x400"

	DefaultDescription = "Premium quality product"
)

// Product is a catalog entry as served by the product API.
//
// Optional backend fields are pointers so "absent" can be told apart from a zero value:
// sorting treats an absent rating as 0 while display falls back to DefaultRating.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`

	OriginalPrice   *float64 `json:"originalPrice,omitempty"`
	DiscountPercent int      `json:"discountPercent,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Description     string   `json:"description,omitempty"`
	InStock         *bool    `json:"inStock,omitempty"`
	Category        string   `json:"category,omitempty"`
}

// ListPrice is the pre-discount price; it falls back to Price.
func (p Product) ListPrice() float64 {
	if p.OriginalPrice != nil && *p.OriginalPrice != 0 {
		return *p.OriginalPrice
	}
	return p.Price
}

// HasMarkdown reports whether the card should show a struck-through list price.
func (p Product) HasMarkdown() bool {
	return p.ListPrice() != p.Price
}

func (p Product) DisplayRating() float64 {
	if p.Rating == nil || *p.Rating == 0 {
		return DefaultRating
	}
	return *p.Rating
}

// SortRating is the rating used for ordering; unrated products sink to the bottom.
func (p Product) SortRating() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// Available treats a missing stock flag as in stock.
func (p Product) Available() bool {
	return p.InStock == nil || *p.InStock
}

func (p Product) Image() string {
	if p.ImageURL == "" {
		return PlaceholderImageURL
	}
	return p.ImageURL
}

// DetailImage is Image with the larger placeholder used by the detail view.
func (p Product) DetailImage() string {
	if p.ImageURL == "" {
		return DetailImageURL
	}
	return p.ImageURL
}

func (p Product) DisplayDescription() string {
	if p.Description == "" {
		return DefaultDescription
	}
	return p.Description
}

// DisplayCategory returns the product's own label, or fallback (usually the category title).
func (p Product) DisplayCategory(fallback string) string {
	if p.Category == "" {
		return fallback
	}
	return p.Category
}

// Stats summarizes the products currently on screen.
type Stats struct {
	TotalProducts int     `json:"totalProducts"`
	AveragePrice  float64 `json:"averagePrice"`
	InStock       int     `json:"inStock"`
}
