package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orderdesk/orderdesk/internal/store"
)

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The submit is in flight; controls are disabled until it resolves.
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		cmd := m.leaveForm()
		return m, cmd

	case "tab", "shift+tab":
		if m.focus == focusDescription {
			m.focus = focusItems
			m.desc.Blur()
		} else {
			m.focus = focusDescription
			m.desc.Focus()
		}
		return m, nil

	case "enter":
		cmd := m.submit()
		return m, cmd
	}

	if m.focus == focusDescription {
		var cmd tea.Cmd
		m.desc, cmd = m.desc.Update(msg)
		m.session.SetDescription(m.desc.Value())
		return m, cmd
	}

	// Item selection only moves over loaded items; on a failed catalog
	// fetch the list is empty and these keys do nothing.
	switch msg.String() {
	case "up", "k":
		if m.itemIndex > 0 {
			m.itemIndex--
		}
	case "down", "j":
		if m.itemIndex < len(m.catalog.Items)-1 {
			m.itemIndex++
		}
	case " ":
		if m.catalog.State == store.StateReady && m.itemIndex < len(m.catalog.Items) {
			m.session.ToggleItem(m.catalog.Items[m.itemIndex].ID)
		}
	}
	return m, nil
}
