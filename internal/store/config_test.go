package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadConfig_RoundTrip(t *testing.T) {
	t.Setenv("STOREFRONT_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig (missing file): %v", err)
	}
	if cfg.APIBase != "" || cfg.Profile() != "" {
		t.Fatalf("expected zero config; got %+v", cfg)
	}

	for k, v := range map[string]string{
		"apiBase":         "http://shop.test/api/product_uploads/",
		"defaultCategory": "Bricks",
		"wishlistBackend": "file",
		"limit":           "25",
		"tui.profile":     "mono",
	} {
		if err := cfg.SetConfigValue(k, v); err != nil {
			t.Fatalf("SetConfigValue(%s): %v", k, err)
		}
	}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.APIBase != "http://shop.test/api/product_uploads" {
		t.Fatalf("expected trailing slash trimmed; got %q", got.APIBase)
	}
	if got.DefaultCategory != "bricks" || got.WishlistBackend != "file" || got.Limit != 25 || got.Profile() != "mono" {
		t.Fatalf("unexpected config: %+v", got)
	}
}

func TestSetConfigValue_Rejects(t *testing.T) {
	cfg := &GlobalConfig{}
	if err := cfg.SetConfigValue("color", "red"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if err := cfg.SetConfigValue("limit", "-1"); err == nil {
		t.Fatalf("expected invalid limit error")
	}
	if err := cfg.SetConfigValue("wishlistBackend", "redis"); err == nil {
		t.Fatalf("expected invalid backend error")
	}
}

func TestTUIState_CorruptFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, tuiStateFileName), []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st, err := StateDir(dir).LoadTUIState()
	if err != nil {
		t.Fatalf("LoadTUIState: %v", err)
	}
	if st.Version != 1 || st.Category != "" {
		t.Fatalf("expected defaults; got %+v", st)
	}

	if err := StateDir(dir).SaveTUIState(&TUIState{Category: "plumbing", Sort: "rating", Query: "pvc"}); err != nil {
		t.Fatalf("SaveTUIState: %v", err)
	}
	st, err = StateDir(dir).LoadTUIState()
	if err != nil {
		t.Fatalf("LoadTUIState: %v", err)
	}
	if st.Category != "plumbing" || st.Sort != "rating" || st.Query != "pvc" || st.Version != 1 {
		t.Fatalf("unexpected state: %+v", st)
	}
}
