package main

import (
	"os"
	"strings"

	"storefront-cli/internal/catalog"
	"storefront-cli/internal/cli"
)

func isCategoryID(s string) bool {
	_, ok := catalog.Lookup(s)
	return ok
}

// rewriteCategoryShortcutArgs makes `storefront <category-id>` behave like
// `storefront browse <category-id>`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten before
// parsing. Persistent flags may come first (`storefront --api ... bricks`), so the
// first positional token is located rather than assuming argv[1].
func rewriteCategoryShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	// Flags we don't recognize are skipped without consuming a value, so a category
	// id is never swallowed by mistake.
	valueFlags := map[string]bool{
		"--api":            true,
		"--wishlist-store": true,
		"--format":         true,
		"--log-level":      true,
	}

	insertBrowse := func(at int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:at]...)
		out = append(out, "browse")
		out = append(out, argv[at:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isCategoryID(argv[i+1]) {
				return insertBrowse(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isCategoryID(a) {
			return insertBrowse(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteCategoryShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
