package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// WishlistKey is the storage key holding the JSON array of wishlisted product ids.
const WishlistKey = "wishlist"

// Wishlist is a persisted set of product ids. Mutations are written through to the KV
// before they return; membership order is insertion order.
type Wishlist struct {
	kv     KV
	logger *zap.Logger
	ids    []string
}

func NewWishlist(kv KV, logger *zap.Logger) *Wishlist {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wishlist{kv: kv, logger: logger}
}

// Load reads the stored set. A missing key is an empty wishlist; a corrupt value is
// logged and treated as empty.
func (w *Wishlist) Load(ctx context.Context) error {
	if w.kv == nil {
		return errors.New("wishlist: nil store")
	}
	raw, ok, err := w.kv.Get(ctx, WishlistKey)
	if err != nil {
		return err
	}
	w.ids = []string{}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		w.logger.Warn("wishlist value unreadable; starting empty", zap.Error(err))
		return nil
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		w.ids = append(w.ids, id)
	}
	return nil
}

func (w *Wishlist) IDs() []string {
	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

func (w *Wishlist) Len() int { return len(w.ids) }

func (w *Wishlist) Has(id string) bool {
	for _, x := range w.ids {
		if x == id {
			return true
		}
	}
	return false
}

// Toggle adds id when absent and removes it when present, then persists the set.
// It reports whether id is a member afterwards. Ids need not belong to a loaded product.
func (w *Wishlist) Toggle(ctx context.Context, id string) (bool, error) {
	added := !w.Has(id)
	next := make([]string, 0, len(w.ids)+1)
	for _, x := range w.ids {
		if x != id {
			next = append(next, x)
		}
	}
	if added {
		next = append(next, id)
	}
	if err := w.persist(ctx, next); err != nil {
		return !added, err
	}
	w.ids = next
	w.logger.Debug("wishlist toggled", zap.String("productId", id), zap.Bool("added", added), zap.Int("size", len(next)))
	return added, nil
}

func (w *Wishlist) Clear(ctx context.Context) error {
	if err := w.persist(ctx, []string{}); err != nil {
		return err
	}
	w.ids = []string{}
	return nil
}

func (w *Wishlist) persist(ctx context.Context, ids []string) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return w.kv.Set(ctx, WishlistKey, string(b))
}
