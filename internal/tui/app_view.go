package tui

import (
	"fmt"
	"strings"

	"storefront-cli/internal/browse"
	"storefront-cli/internal/catalog"
	"storefront-cli/internal/format"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	outerMargin = 1
	// header(2) + tabs(1) + stats(3) + toolbar(1) + flash(1) + footer(1) + gaps(2)
	chromeHeight = 11
)

func (m appModel) View() string {
	w := m.width
	if w <= 0 {
		w = 80
	}

	switch m.modal {
	case modalDetail:
		return m.viewOverlay(m.detailTitle(), detailKeyMap{m.keys})
	case modalHelp:
		return m.viewOverlay("Keys", nil)
	}

	sections := []string{
		m.viewHeader(w),
		m.viewTabs(w),
		m.viewStats(w),
		m.viewToolbar(w),
		m.viewGrid(w),
		m.viewFlash(w),
		lipgloss.NewStyle().PaddingLeft(outerMargin).Render(m.help.View(m.keys)),
	}
	return strings.Join(sections, "\n")
}

// viewHeader paints the category title over its gradient, one column at a time.
func (m appModel) viewHeader(w int) string {
	c := m.category()
	title := strings.TrimSpace(c.Emoji + " " + c.Title)
	return gradientBar(c, " "+title, w, true) + "\n" + gradientBar(c, " "+c.Description, w, false)
}

func gradientBar(c catalog.Category, text string, w int, bold bool) string {
	text = padOrCutANSI(truncateToWidth(text, w), w)
	var b strings.Builder
	col := 0
	for _, r := range text {
		t := 0.0
		if w > 1 {
			t = float64(col) / float64(w-1)
		}
		st := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Blend(t))).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(bold)
		ch := string(r)
		b.WriteString(st.Render(ch))
		col += xansi.StringWidth(ch)
	}
	return b.String()
}

func (m appModel) viewTabs(w int) string {
	active := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg)
	inactive := styleMuted().Padding(0, 1)

	tabs := make([]string, 0, len(catalog.All()))
	for _, c := range catalog.All() {
		label := c.Emoji + " " + c.Title
		if c.ID == m.ctrl.Category() {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return padOrCutANSI(strings.Repeat(" ", outerMargin)+row, w)
}

func (m appModel) viewStats(w int) string {
	st := m.ctrl.Stats()
	cards := []struct{ label, value string }{
		{"Total Products", fmt.Sprintf("%d", st.TotalProducts)},
		{"Average Price", format.Price(st.AveragePrice)},
		{"In Stock", fmt.Sprintf("%d", st.InStock)},
	}

	cardW := (w - 2*outerMargin) / len(cards)
	if cardW < 16 {
		cardW = 16
	}
	box := lipgloss.NewStyle().
		Width(cardW-2).
		Border(lipgloss.RoundedBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(m.category().Blend(0))).
		PaddingLeft(1)
	valueSt := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, box.Render(valueSt.Render(c.value)+"\n"+styleMuted().Render(c.label)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return normalizePane(lipgloss.NewStyle().PaddingLeft(outerMargin).Render(row)+"\n", w, 3)
}

func (m appModel) viewToolbar(w int) string {
	sortSt := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	left := styleMuted().Render("Sort: ") + sortSt.Render(m.ctrl.SortKey().Label())

	var right string
	switch {
	case m.searching:
		right = m.search.View()
	case strings.TrimSpace(m.ctrl.Query()) != "":
		right = styleMuted().Render("Search: ") + m.ctrl.Query()
	default:
		right = styleMuted().Render("/ to search")
	}
	return padOrCutANSI(strings.Repeat(" ", outerMargin)+left+"    "+right, w)
}

func (m appModel) viewGrid(w int) string {
	h := m.list.Height()
	g := m.ctrl.Grid()

	var body string
	switch g.State {
	case browse.GridProducts:
		body = lipgloss.NewStyle().PaddingLeft(outerMargin).Render(m.list.View())
		return normalizePane(body, w, h)
	case browse.GridLoading:
		body = m.spinner.View() + " " + g.Title
	case browse.GridError:
		body = lipgloss.NewStyle().Bold(true).Foreground(colorOutStock).Render("⚠ "+g.Title) + "\n" + styleMuted().Render(g.Hint)
	case browse.GridEmpty:
		body = lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render("🔍 "+g.Title) + "\n" + styleMuted().Render(g.Hint)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, lipgloss.NewStyle().Align(lipgloss.Center).Render(body))
}

func (m appModel) viewFlash(w int) string {
	if m.flash == "" {
		return ""
	}
	bg := colorFlashOkBg
	if m.flashErr {
		bg = colorFlashErrorBg
	}
	st := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#ffffff")).Background(bg)
	return padOrCutANSI(strings.Repeat(" ", outerMargin)+st.Render(truncateToWidth(m.flash, w-4)), w)
}
