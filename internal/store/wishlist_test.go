package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"
)

func openBackends(t *testing.T) map[Backend]KV {
	t.Helper()
	ctx := context.Background()
	out := map[Backend]KV{}
	for _, b := range []Backend{BackendMemory, BackendFile, BackendSQLite} {
		kv, err := OpenKV(ctx, b, t.TempDir())
		if err != nil {
			t.Fatalf("OpenKV(%s): %v", b, err)
		}
		t.Cleanup(func() { _ = kv.Close() })
		out[b] = kv
	}
	return out
}

func TestWishlist_ToggleTwiceRestoresMembership(t *testing.T) {
	ctx := context.Background()
	for backend, kv := range openBackends(t) {
		t.Run(string(backend), func(t *testing.T) {
			w := NewWishlist(kv, zaptest.NewLogger(t))
			if err := w.Load(ctx); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if w.Has("a") {
				t.Fatalf("expected empty wishlist on first use")
			}

			added, err := w.Toggle(ctx, "a")
			if err != nil || !added || !w.Has("a") {
				t.Fatalf("first toggle: added=%v err=%v", added, err)
			}
			added, err = w.Toggle(ctx, "a")
			if err != nil || added || w.Has("a") {
				t.Fatalf("second toggle: added=%v err=%v", added, err)
			}
			if w.Len() != 0 {
				t.Fatalf("expected empty wishlist after two toggles; got %v", w.IDs())
			}
		})
	}
}

func TestWishlist_WriteThroughSurvivesReload(t *testing.T) {
	ctx := context.Background()
	for backend, kv := range openBackends(t) {
		t.Run(string(backend), func(t *testing.T) {
			w := NewWishlist(kv, nil)
			for _, id := range []string{"a", "b", "unknown-product"} {
				if _, err := w.Toggle(ctx, id); err != nil {
					t.Fatalf("Toggle(%s): %v", id, err)
				}
			}

			raw, ok, err := kv.Get(ctx, WishlistKey)
			if err != nil || !ok {
				t.Fatalf("expected persisted wishlist; ok=%v err=%v", ok, err)
			}
			if raw != `["a","b","unknown-product"]` {
				t.Fatalf("unexpected stored value %q", raw)
			}

			w2 := NewWishlist(kv, nil)
			if err := w2.Load(ctx); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(w2.IDs(), []string{"a", "b", "unknown-product"}) {
				t.Fatalf("unexpected reloaded ids: %v", w2.IDs())
			}
		})
	}
}

func TestWishlist_CorruptValueStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Set(ctx, WishlistKey, "{not json")

	w := NewWishlist(kv, zaptest.NewLogger(t))
	if err := w.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Len() != 0 {
		t.Fatalf("expected empty wishlist; got %v", w.IDs())
	}
	if _, err := w.Toggle(ctx, "x"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if raw, _, _ := kv.Get(ctx, WishlistKey); raw != `["x"]` {
		t.Fatalf("expected corrupt value to be replaced; got %q", raw)
	}
}

func TestWishlist_Clear(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	w := NewWishlist(kv, nil)
	_, _ = w.Toggle(ctx, "a")
	if err := w.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if raw, _, _ := kv.Get(ctx, WishlistKey); raw != `[]` {
		t.Fatalf("expected [] after clear; got %q", raw)
	}
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	if err := NewFileKV(path).Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := NewFileKV(path).Get(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestParseBackend(t *testing.T) {
	if b, err := ParseBackend(""); err != nil || b != BackendSQLite {
		t.Fatalf("expected sqlite default; got %q %v", b, err)
	}
	if b, err := ParseBackend(" FILE "); err != nil || b != BackendFile {
		t.Fatalf("expected file; got %q %v", b, err)
	}
	if _, err := ParseBackend("redis"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
