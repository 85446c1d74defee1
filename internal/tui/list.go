package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orderdesk/orderdesk/internal/api"
)

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		switch msg.String() {
		case "enter", "esc":
			m.searchActive = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.orders.SetQuery(m.search.Value())
			m.clampCursor()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searchActive = true
		return m, m.search.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.orders.Filtered)-1 {
			m.cursor++
		}
		return m, nil

	case "a":
		if m.busy {
			return m, nil
		}
		cmd := m.enterForm(nil)
		return m, cmd

	case "e", "enter":
		if m.busy {
			return m, nil
		}
		if order, ok := m.selectedOrder(); ok {
			cmd := m.enterForm(&order)
			return m, cmd
		}
		return m, nil

	case "d":
		if m.busy {
			return m, nil
		}
		if order, ok := m.selectedOrder(); ok {
			m.modal = modalConfirmDelete
			m.deleteTarget = order
		}
		return m, nil

	case "r":
		if m.busy {
			return m, nil
		}
		m.listErr = ""
		return m, m.refreshOrders()
	}

	return m, nil
}

func (m Model) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.modal = modalNone
		cmd := m.deleteOrder(m.deleteTarget.ID)
		return m, cmd
	case "n", "esc":
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

func (m Model) selectedOrder() (api.Order, bool) {
	if m.cursor < 0 || m.cursor >= len(m.orders.Filtered) {
		return api.Order{}, false
	}
	return m.orders.Filtered[m.cursor], true
}
