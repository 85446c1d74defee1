// Package tui binds the state-and-sync core to the terminal with
// bubbletea. All state mutation happens on the program's update loop;
// network calls run as commands whose result messages carry the fetch
// session token, so responses arriving after the user moved on are
// discarded by the stores rather than applied.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/controller"
	"github.com/orderdesk/orderdesk/internal/form"
	"github.com/orderdesk/orderdesk/internal/store"
	"github.com/orderdesk/orderdesk/internal/syncer"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
)

type formFocus int

const (
	focusDescription formFocus = iota
	focusItems
)

// Model is the bubbletea model for the whole application.
type Model struct {
	client *api.Client
	log    zerolog.Logger

	ctrl    *controller.Controller
	orders  *store.Orders
	catalog *store.Catalog
	session *form.Session
	sync    *syncer.Orchestrator

	// list view
	search       textinput.Model
	searchActive bool
	cursor       int
	listErr      string

	// form view
	desc      textinput.Model
	focus     formFocus
	itemIndex int
	formErr   string

	// one mutation in flight at a time; the triggering control is
	// disabled while set
	busy bool

	modal        modalKind
	deleteTarget api.Order

	events chan api.Event

	width  int
	height int
}

// New assembles the application model. The confirmation capability handed
// to the orchestrator always answers yes because the interactive
// confirmation is the delete modal itself; Remove is only invoked after
// the user accepted it.
func New(client *api.Client, log zerolog.Logger) Model {
	search := textinput.New()
	search.Placeholder = "Search by Order ID or Description..."
	search.CharLimit = 100
	search.Width = 44

	desc := textinput.New()
	desc.Placeholder = "Enter order description"
	desc.CharLimit = 100
	desc.Width = 48

	return Model{
		client:  client,
		log:     log,
		ctrl:    controller.New(),
		orders:  store.NewOrders(),
		catalog: store.NewCatalog(),
		sync:    syncer.New(client, syncer.ConfirmFunc(func(string) bool { return true }), log),
		search:  search,
		desc:    desc,
		events:  make(chan api.Event, 4),
	}
}

// Init starts the first order fetch and the best-effort event watcher.
func (m Model) Init() tea.Cmd {
	refresh := m.refreshOrders()
	return tea.Batch(refresh, m.startWatch(), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ordersFetchedMsg:
		if msg.err != nil {
			if m.orders.ApplyError(msg.session, msg.err) {
				m.log.Debug().Err(msg.err).Msg("order fetch failed")
			}
			return m, nil
		}
		if m.orders.Apply(msg.session, msg.orders) {
			m.clampCursor()
		}
		return m, nil

	case catalogFetchedMsg:
		if msg.err != nil {
			m.catalog.ApplyError(msg.session, msg.err)
			return m, nil
		}
		if m.catalog.Apply(msg.session, msg.items) {
			m.itemIndex = 0
		}
		return m, nil

	case submitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.formErr = userMessage(msg.err)
			return m, nil
		}
		// Back to the list, then re-fetch so the visible list matches
		// server truth.
		m.ctrl.OnSubmitSuccess()
		m.session = nil
		return m, m.refreshOrders()

	case deleteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.listErr = userMessage(msg.err)
			return m, nil
		}
		m.listErr = ""
		return m, m.refreshOrders()

	case watchEventMsg:
		if !msg.ok {
			// Feed closed; keep running without live updates.
			return m, nil
		}
		next := waitForEvent(m.events)
		if msg.ev.Type == api.EventOrdersChanged && m.ctrl.Mode() == controller.ModeList && !m.busy {
			return m, tea.Batch(m.refreshOrders(), next)
		}
		return m, next

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal == modalConfirmDelete {
		return m.updateConfirmModal(msg)
	}

	switch m.ctrl.Mode() {
	case controller.ModeForm:
		return m.updateForm(msg)
	default:
		return m.updateList(msg)
	}
}

// enterForm switches to form mode, seeds a fresh draft and kicks off the
// per-session catalog fetch.
func (m *Model) enterForm(editing *api.Order) tea.Cmd {
	if editing != nil {
		m.ctrl.ShowEditForm(*editing)
	} else {
		m.ctrl.ShowCreateForm()
	}

	m.session = form.NewSession(m.ctrl.Editing(), m.catalog)
	m.formErr = ""
	m.focus = focusDescription
	m.itemIndex = 0

	m.desc.SetValue(m.session.Draft.Description)
	m.desc.CursorEnd()
	m.desc.Focus()

	session := m.catalog.Begin()
	return m.fetchCatalog(session)
}

// leaveForm returns to the list and starts a fresh fetch, so mutations
// made by other clients while the form was open become visible. Watch
// events are not acted on in form mode; the re-fetch on every list entry
// covers them.
func (m *Model) leaveForm() tea.Cmd {
	m.ctrl.Cancel()
	m.session = nil
	m.desc.Blur()
	return m.refreshOrders()
}

func (m *Model) refreshOrders() tea.Cmd {
	session := m.orders.BeginRefresh()
	return m.fetchOrders(session)
}

func (m *Model) clampCursor() {
	if n := len(m.orders.Filtered); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
