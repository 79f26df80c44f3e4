package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

type GlobalConfig struct {
	// APIBase is the product_uploads API root; listings live under {APIBase}/category/{id}.
	APIBase string `json:"apiBase,omitempty"`

	// DefaultCategory is opened when the TUI starts without a remembered category.
	DefaultCategory string `json:"defaultCategory,omitempty"`

	// WishlistBackend selects where the wishlist lives: sqlite (default) | file.
	WishlistBackend string `json:"wishlistBackend,omitempty"`

	// Limit is forwarded as ?limit= on listing requests (0 = server default).
	Limit int `json:"limit,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Profile is the appearance profile id ("default", "mono").
	Profile string `json:"profile,omitempty"`
}

// ConfigKeys are the keys accepted by SetConfigValue, in display order.
var ConfigKeys = []string{"apiBase", "defaultCategory", "wishlistBackend", "limit", "tui.profile"}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.storefront).
	if v := strings.TrimSpace(os.Getenv("STOREFRONT_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".storefront"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Unique temp name + rename so a TUI and a CLI writing at once cannot interleave.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// SetConfigValue updates one dotted key. Unknown keys are rejected.
func (cfg *GlobalConfig) SetConfigValue(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "apiBase":
		cfg.APIBase = strings.TrimRight(value, "/")
	case "defaultCategory":
		cfg.DefaultCategory = strings.ToLower(value)
	case "wishlistBackend":
		if _, err := ParseBackend(value); err != nil {
			return err
		}
		cfg.WishlistBackend = value
	case "limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("limit must be a non-negative integer, got %q", value)
		}
		cfg.Limit = n
	case "tui.profile":
		if cfg.TUI == nil {
			cfg.TUI = &TUIConfig{}
		}
		cfg.TUI.Profile = value
	default:
		known := append([]string(nil), ConfigKeys...)
		sort.Strings(known)
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(known, ", "))
	}
	return nil
}

// Profile returns the configured TUI profile or "".
func (cfg *GlobalConfig) Profile() string {
	if cfg == nil || cfg.TUI == nil {
		return ""
	}
	return strings.TrimSpace(cfg.TUI.Profile)
}
