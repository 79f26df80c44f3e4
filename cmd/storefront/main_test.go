package main

import (
	"reflect"
	"testing"
)

func TestRewriteCategoryShortcutArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"storefront"},
			want: []string{"storefront"},
		},
		{
			name: "category id first token",
			in:   []string{"storefront", "bricks"},
			want: []string{"storefront", "browse", "bricks"},
		},
		{
			name: "category id after value flag",
			in:   []string{"storefront", "--api", "http://localhost:3000/api/product_uploads", "iron-steel"},
			want: []string{"storefront", "--api", "http://localhost:3000/api/product_uploads", "browse", "iron-steel"},
		},
		{
			name: "category id after equals flag",
			in:   []string{"storefront", "--wishlist-store=file", "plumbing"},
			want: []string{"storefront", "--wishlist-store=file", "browse", "plumbing"},
		},
		{
			name: "category id after bool flag",
			in:   []string{"storefront", "--pretty", "cement"},
			want: []string{"storefront", "--pretty", "browse", "cement"},
		},
		{
			name: "category id after double dash",
			in:   []string{"storefront", "--", "home-interior"},
			want: []string{"storefront", "--", "browse", "home-interior"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"storefront", "products", "cement"},
			want: []string{"storefront", "products", "cement"},
		},
		{
			name: "unknown token not rewritten",
			in:   []string{"storefront", "tiles"},
			want: []string{"storefront", "tiles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteCategoryShortcutArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteCategoryShortcutArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
