package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// Colors are lipgloss.AdaptiveColor values; "faint" is only applied on dark
// backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorSurfaceBg = ac("255", "235")
	colorControlBg = ac("252", "236")
	colorAccent    = ac("27", "62")
	colorAccentFg  = ac("255", "235")

	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorCardBorder = ac("250", "243")
	colorCardMetaFg = ac("238", "250")

	colorPrice    = ac("#5a3fc0", "#a78bfa")
	colorDiscount = ac("#c0392b", "#ff6b6b")
	colorInStock  = ac("#1e7e34", "#5fd787")
	colorOutStock = ac("#c0392b", "#ff6b6b")
	colorStar     = ac("#b8860b", "#ffd75f")
	colorHeart    = ac("#d6336c", "#ff5f87")

	colorFlashOkBg    = ac("#1e7e34", "#2f6f3e")
	colorFlashErrorBg = ac("196", "160")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can disable colors
// in a TUI. Only NO_COLOR and the "mono" profile force plain output here.
func applyColorProfilePreference(profile string) {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" || strings.EqualFold(strings.TrimSpace(profile), "mono") {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	p := termenv.ColorProfile()

	// TERM/COLORTERM can report stronger support than the detector does.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if p != termenv.Ascii {
			p = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (p == termenv.Ascii || p == termenv.ANSI) {
		p = termenv.ANSI256
	}

	lipgloss.SetColorProfile(p)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) STOREFRONT_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("fg;bg", e.g. "15;0")
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("STOREFRONT_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
