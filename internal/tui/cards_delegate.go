package tui

import (
	"fmt"
	"io"
	"strings"

	"storefront-cli/internal/browse"
	"storefront-cli/internal/format"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	glyphHeartOn  = "♥"
	glyphHeartOff = "♡"
)

// productItem adapts a rendered card to list.Item.
type productItem struct {
	card     browse.Card
	category string // fallback label when the product has no category
}

func (it productItem) FilterValue() string { return it.card.Product.Name }

type cardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style

	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
	priceStyle lipgloss.Style
	wasStyle   lipgloss.Style
	badgeStyle lipgloss.Style
	starStyle  lipgloss.Style
	heartStyle lipgloss.Style
	inStock    lipgloss.Style
	outOfStock lipgloss.Style
}

func newCardDelegate() cardDelegate {
	base := lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)

	return cardDelegate{
		normalCard:   base,
		selectedCard: base.BorderForeground(colorAccent),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		metaStyle:    lipgloss.NewStyle().Foreground(colorCardMetaFg),
		priceStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorPrice),
		wasStyle:     styleMuted().Strikethrough(true),
		badgeStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorDiscount),
		starStyle:    lipgloss.NewStyle().Foreground(colorStar),
		heartStyle:   lipgloss.NewStyle().Foreground(colorHeart),
		inStock:      lipgloss.NewStyle().Foreground(colorInStock),
		outOfStock:   lipgloss.NewStyle().Foreground(colorOutStock),
	}
}

func (d cardDelegate) Height() int  { return 6 } // 4 inner lines + border top/bottom
func (d cardDelegate) Spacing() int { return 0 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(productItem)
	totalW := m.Width()
	if !ok || totalW < 12 {
		return
	}

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	innerW := totalW - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW)

	lines := d.cardLines(it, innerW)
	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}
	fmt.Fprint(w, card.Render(strings.Join(lines, "\n")))
}

func (d cardDelegate) cardLines(it productItem, innerW int) []string {
	p := it.card.Product

	heart := d.heartStyle.Render(glyphHeartOff)
	if it.card.Wishlisted {
		heart = d.heartStyle.Render(glyphHeartOn)
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "(unnamed product)"
	}
	title := d.titleStyle.Render(truncateToWidth(name, innerW-3)) + "  " + heart

	price := d.priceStyle.Render(format.Price(p.Price))
	if p.HasMarkdown() {
		price += "  " + d.wasStyle.Render(format.Price(p.ListPrice()))
	}
	if badge := format.Discount(p.DiscountPercent); badge != "" {
		price += "  " + d.badgeStyle.Render(badge)
	}

	stock := d.inStock.Render("In Stock")
	if !p.Available() {
		stock = d.outOfStock.Render("Out of Stock")
	}
	meta := d.starStyle.Render(format.Rating(p.DisplayRating())) + d.metaStyle.Render("  •  ") + stock

	desc := d.metaStyle.Render(truncateToWidth(p.DisplayCategory(it.category)+" · "+p.DisplayDescription(), innerW))

	return []string{title, price, meta, desc}
}
