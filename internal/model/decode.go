package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// wireProduct accepts both the canonical field names and the raw column names the
// product_uploads backend emits (productName, image, discount, numeric id, DECIMAL-as-string).
type wireProduct struct {
	ID      flexString `json:"id"`
	AltID   flexString `json:"_id"`
	Name    string     `json:"name"`
	AltName string     `json:"productName"`

	Price           flexNumber `json:"price"`
	OriginalPrice   flexNumber `json:"originalPrice"`
	DiscountPercent flexNumber `json:"discountPercent"`
	Discount        flexNumber `json:"discount"`
	Rating          flexNumber `json:"rating"`

	ImageURL    string   `json:"imageUrl"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	InStock     flexBool `json:"inStock"`
	Category    string   `json:"category"`
}

func (p *Product) UnmarshalJSON(b []byte) error {
	var w wireProduct
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	out := Product{
		ID:          firstNonEmpty(string(w.ID), string(w.AltID)),
		Name:        strings.TrimSpace(firstNonEmpty(w.Name, w.AltName)),
		ImageURL:    strings.TrimSpace(firstNonEmpty(w.ImageURL, w.Image)),
		Description: strings.TrimSpace(w.Description),
		Category:    strings.TrimSpace(w.Category),
	}
	if w.Price.ok {
		out.Price = w.Price.v
	}
	if w.OriginalPrice.ok {
		v := w.OriginalPrice.v
		out.OriginalPrice = &v
	}
	switch {
	case w.DiscountPercent.ok:
		out.DiscountPercent = clampPercent(w.DiscountPercent.v)
	case w.Discount.ok:
		out.DiscountPercent = clampPercent(w.Discount.v)
	}
	if w.Rating.ok {
		v := w.Rating.v
		out.Rating = &v
	}
	if w.InStock.ok {
		v := w.InStock.v
		out.InStock = &v
	}

	*p = out
	return nil
}

func clampPercent(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// flexNumber decodes a JSON number or a numeric string. Null and "" leave it unset.
type flexNumber struct {
	v  float64
	ok bool
}

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", string(b))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %s", string(b))
	}
	n.v, n.ok = v, true
	return nil
}

// flexString decodes a JSON string or number (auto-increment ids) as a string.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(strings.TrimSpace(v))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("invalid id %s", string(b))
	}
	*s = flexString(num.String())
	return nil
}

// flexBool decodes true/false as well as the 0/1 (and "0"/"1") a TINYINT column produces.
type flexBool struct {
	v  bool
	ok bool
}

func (f *flexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := strings.Trim(string(b), `"`)
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		f.v, f.ok = true, true
	case "false", "0", "no":
		f.v, f.ok = false, true
	case "":
		return nil
	default:
		return fmt.Errorf("invalid boolean %s", string(b))
	}
	return nil
}
