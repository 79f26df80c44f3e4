package tui

import (
	"storefront-cli/internal/browse"
	"storefront-cli/internal/catalog"
	"storefront-cli/internal/docs"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.modal == modalDetail {
			m.setDetailContent()
		}
		return m, nil

	case productsLoadedMsg:
		if msg.seq != m.loadSeq || msg.category != m.ctrl.Category() {
			m.logger.Debug("dropping stale load", zap.String("category", msg.category))
			return m, nil
		}
		m.ctrl.Apply(msg.products, msg.err)
		m.refreshList()
		m.list.Select(0)
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Phase() != browse.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.saveState()
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		switch m.modal {
		case modalDetail:
			return m.updateDetail(msg)
		case modalHelp:
			if key.Matches(msg, m.keys.Help, m.keys.CloseDetail, m.keys.Quit) {
				m.modal = modalNone
				return m, nil
			}
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveState()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextCat):
		cmd := m.switchCategory(catalog.Next(m.ctrl.Category()))
		return m, cmd

	case key.Matches(msg, m.keys.PrevCat):
		cmd := m.switchCategory(catalog.Prev(m.ctrl.Category()))
		return m, cmd

	case key.Matches(msg, m.keys.CycleSort):
		return m.applySort(m.ctrl.SortKey().Next())
	case key.Matches(msg, m.keys.SortNewest):
		return m.applySort(browse.SortNewest)
	case key.Matches(msg, m.keys.SortLow):
		return m.applySort(browse.SortPriceLow)
	case key.Matches(msg, m.keys.SortHigh):
		return m.applySort(browse.SortPriceHigh)
	case key.Matches(msg, m.keys.SortRating):
		return m.applySort(browse.SortRating)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.ctrl.Query())
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Wishlist):
		p, ok := m.selectedProduct()
		if !ok {
			return m, nil
		}
		cmd := m.toggleWishlist(p.ID, p.Name)
		return m, cmd

	case key.Matches(msg, m.keys.Open):
		p, ok := m.selectedProduct()
		if !ok || !m.ctrl.OpenDetail(p.ID) {
			return m, nil
		}
		m.modal = modalDetail
		m.setDetailContent()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		body, _ := docs.Get("keys")
		m.modal = modalHelp
		m.detail.SetContent(renderMarkdown(body, m.detail.Width))
		m.detail.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) applySort(k browse.SortKey) (tea.Model, tea.Cmd) {
	m.ctrl.SetSort(k)
	m.refreshList()
	m.list.Select(0)
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.ctrl.Search("")
		m.refreshList()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.ctrl.Query() {
		m.ctrl.Search(m.search.Value())
		m.refreshList()
		m.list.Select(0)
	}
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.AddToCart):
		ack, ok := m.ctrl.AddToCart()
		m.modal = modalNone
		if !ok {
			return m, nil
		}
		cmd := m.setFlash(ack.Message, false)
		return m, cmd

	case key.Matches(msg, m.keys.Wishlist):
		p, ok := m.ctrl.Selected()
		if !ok {
			return m, nil
		}
		cmd := m.toggleWishlist(p.ID, p.Name)
		m.setDetailContent()
		return m, cmd

	case key.Matches(msg, m.keys.CloseDetail), key.Matches(msg, m.keys.Quit):
		m.ctrl.CloseDetail()
		m.modal = modalNone
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// toggleWishlist persists the change first; cards only re-render after the write.
func (m *appModel) toggleWishlist(id, name string) tea.Cmd {
	added, err := m.ctrl.ToggleWishlist(m.ctx, id)
	if err != nil {
		return m.setFlash("Could not update wishlist: "+err.Error(), true)
	}
	m.refreshList()
	if added {
		return m.setFlash("Added \""+name+"\" to wishlist", false)
	}
	return m.setFlash("Removed \""+name+"\" from wishlist", false)
}
