package tui

import (
	"strings"

	"storefront-cli/internal/format"
	"storefront-cli/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// border(2) + horizontal padding(2)
const overlayFrame = 4

func overlaySize(width, height int) (int, int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	w := width * 3 / 4
	if w > 90 {
		w = 90
	}
	if w < 30 {
		w = min(width, 30)
	}
	h := height - 4
	if h < 8 {
		h = min(height, 8)
	}
	return w, h
}

func (m appModel) detailTitle() string {
	p, ok := m.ctrl.Selected()
	if !ok {
		return ""
	}
	return p.Name
}

func (m *appModel) setDetailContent() {
	p, ok := m.ctrl.Selected()
	if !ok {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(renderDetail(p, m.category().Title, m.ctrl.IsWishlisted(p.ID), m.detail.Width))
	m.detail.GotoTop()
}

// renderDetail lays out everything the overlay shows for p.
func renderDetail(p model.Product, fallbackCategory string, wishlisted bool, width int) string {
	label := styleMuted().Width(12)
	row := func(k, v string) string {
		return label.Render(k) + v
	}

	price := lipgloss.NewStyle().Bold(true).Foreground(colorPrice).Render(format.Price(p.Price))
	if p.HasMarkdown() {
		price += "  " + styleMuted().Strikethrough(true).Render(format.Price(p.ListPrice()))
	}
	if badge := format.Discount(p.DiscountPercent); badge != "" {
		price += "  " + lipgloss.NewStyle().Bold(true).Foreground(colorDiscount).Render(badge)
	}

	stock := lipgloss.NewStyle().Foreground(colorInStock).Render("✓ In Stock")
	if !p.Available() {
		stock = lipgloss.NewStyle().Foreground(colorOutStock).Render("✗ Out of Stock")
	}

	heart := glyphHeartOff + " Not in wishlist"
	if wishlisted {
		heart = glyphHeartOn + " In your wishlist"
	}

	lines := []string{
		row("Price", price),
		row("Category", p.DisplayCategory(fallbackCategory)),
		row("Rating", lipgloss.NewStyle().Foreground(colorStar).Render(format.Rating(p.DisplayRating()))),
		row("Stock", stock),
		row("Wishlist", lipgloss.NewStyle().Foreground(colorHeart).Render(heart)),
		row("Image", truncateToWidth(p.DetailImage(), width-12)),
		"",
		renderMarkdown(p.DisplayDescription(), width),
	}
	return strings.Join(lines, "\n")
}

// viewOverlay centers the detail/help viewport in a modal box over the screen.
func (m appModel) viewOverlay(title string, footer help.KeyMap) string {
	w, _ := overlaySize(m.width, m.height)
	body := m.detail.View()
	if footer != nil {
		body += "\n\n" + m.help.ShortHelpView(footer.ShortHelp())
	}
	box := renderModalBox(w, title, body)

	sw, sh := m.width, m.height
	if sw <= 0 {
		sw = 80
	}
	if sh <= 0 {
		sh = 24
	}
	return lipgloss.Place(sw, sh, lipgloss.Center, lipgloss.Center, box)
}

func renderModalBox(width int, title, content string) string {
	innerW := width - overlayFrame
	if innerW < 10 {
		innerW = 10
	}
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccentFg).
		Background(colorAccent).
		Padding(0, 1).
		Width(innerW).
		Render(truncateToWidth(title, innerW-2))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(innerW + 2).
		Render(header + "\n" + content)
}
