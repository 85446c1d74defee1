package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/controller"
	"github.com/orderdesk/orderdesk/internal/store"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("243"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

func (m Model) View() string {
	if m.ctrl.Mode() == controller.ModeForm {
		return m.formView()
	}
	return m.listView()
}

// --- List view ---

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Order Management"))
	b.WriteString("\n\n")

	b.WriteString("Search: " + m.search.View())
	b.WriteString("\n\n")

	switch m.orders.State {
	case store.StateIdle, store.StateLoading:
		b.WriteString(dimStyle.Render("Loading orders..."))
		b.WriteString("\n")
	case store.StateFailed:
		b.WriteString(errorStyle.Render("Error: " + m.orders.Err.UserMessage()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Press r to retry."))
		b.WriteString("\n")
	default:
		m.writeOrderTable(&b)
	}

	if m.listErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error deleting order: " + m.listErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.modal == modalConfirmDelete:
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"Delete order #%d? This cannot be undone. (y/n)", m.deleteTarget.ID)))
	case m.busy:
		b.WriteString(dimStyle.Render("Working..."))
	case m.searchActive:
		b.WriteString(dimStyle.Render("enter/esc done typing"))
	default:
		b.WriteString(dimStyle.Render("a add · e edit · d delete · / search · r refresh · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) writeOrderTable(b *strings.Builder) {
	if len(m.orders.Filtered) == 0 {
		if strings.TrimSpace(m.orders.Query) != "" {
			b.WriteString(dimStyle.Render("No orders found matching your search."))
		} else {
			b.WriteString(dimStyle.Render("No orders yet. Create your first order!"))
		}
		b.WriteString("\n")
		return
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-28s %-5s %-30s %s",
		"ID", "DESCRIPTION", "ITEMS", "PRODUCTS", "CREATED")))
	b.WriteString("\n")

	for i, o := range m.orders.Filtered {
		row := fmt.Sprintf("%-6s %-28s %-5d %-30s %s",
			"#"+strconv.FormatInt(o.ID, 10),
			truncate(o.Description, 28),
			len(o.Items),
			truncate(itemNames(o.Items), 30),
			o.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}
}

// --- Form view ---

func (m Model) formView() string {
	var b strings.Builder

	if editing := m.ctrl.Editing(); editing != nil {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Edit Order #%d", editing.ID)))
	} else {
		b.WriteString(titleStyle.Render("Book New Order"))
	}
	b.WriteString("\n\n")

	if m.formErr != "" {
		b.WriteString(errorStyle.Render(m.formErr))
		b.WriteString("\n\n")
	} else if m.catalog.State == store.StateFailed {
		b.WriteString(errorStyle.Render("Failed to load products: " + m.catalog.Err.UserMessage()))
		b.WriteString("\n\n")
	}

	b.WriteString("Description: " + m.desc.View())
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Select Products"))
	b.WriteString("\n")

	switch m.catalog.State {
	case store.StateLoading, store.StateIdle:
		b.WriteString(dimStyle.Render("Loading products..."))
		b.WriteString("\n")
	case store.StateFailed:
		// Degraded: no selectable items, the description still works.
	default:
		for i, item := range m.catalog.Items {
			mark := "[ ]"
			if m.session != nil && m.session.Selected(item.ID) {
				mark = checkedStyle.Render("[x]")
			}
			cursor := "  "
			if m.focus == focusItems && i == m.itemIndex {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s %s %s\n",
				cursor, mark, item.Name, dimStyle.Render(item.Description)))
		}
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(dimStyle.Render("Saving..."))
	} else {
		b.WriteString(dimStyle.Render("tab switch field · space toggle item · enter submit · esc cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

// --- Helpers ---

func itemNames(items []api.CatalogItem) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return strings.Join(names, ", ")
}

// truncate shortens s to at most max display cells, never splitting a
// rune.
func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "…")
}
