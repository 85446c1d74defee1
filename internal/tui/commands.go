package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/form"
	"github.com/orderdesk/orderdesk/internal/store"
	"github.com/orderdesk/orderdesk/internal/syncer"
)

// Result messages. Fetch results carry the session token of the refresh
// that started them; the stores drop anything stale.

type ordersFetchedMsg struct {
	session uuid.UUID
	orders  []api.Order
	err     error
}

type catalogFetchedMsg struct {
	session uuid.UUID
	items   []api.CatalogItem
	err     error
}

type submitDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type watchEventMsg struct {
	ev api.Event
	ok bool
}

func (m *Model) fetchOrders(session uuid.UUID) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		orders, err := client.ListOrders(context.Background())
		return ordersFetchedMsg{session: session, orders: orders, err: err}
	}
}

func (m *Model) fetchCatalog(session uuid.UUID) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.ListProducts(context.Background())
		return catalogFetchedMsg{session: session, items: items, err: err}
	}
}

// submit validates the draft and, when it passes, files the create or
// update. Validation failures never leave the update loop.
func (m *Model) submit() tea.Cmd {
	if m.busy || m.session == nil {
		return nil
	}

	if err := m.session.Validate(); err != nil {
		m.formErr = userMessage(err)
		return nil
	}

	m.busy = true
	m.formErr = ""

	payload := m.session.Payload()
	editing := m.ctrl.Editing()
	sync := m.sync
	return func() tea.Msg {
		var err error
		if editing != nil {
			_, err = sync.Update(context.Background(), editing.ID, payload)
		} else {
			_, err = sync.Create(context.Background(), payload)
		}
		return submitDoneMsg{err: err}
	}
}

func (m *Model) deleteOrder(id int64) tea.Cmd {
	m.busy = true
	sync := m.sync
	return func() tea.Msg {
		return deleteDoneMsg{err: sync.Remove(context.Background(), id)}
	}
}

// startWatch connects the best-effort order feed. A failed or dropped
// connection simply ends live updates; everything still works through
// refresh-after-write and manual refresh.
func (m *Model) startWatch() tea.Cmd {
	events := m.events
	watcher := api.NewWatcher(m.client.BaseURL(), m.log)
	go func() {
		_ = watcher.Run(context.Background(), events)
	}()

	return waitForEvent(events)
}

func waitForEvent(events <-chan api.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return watchEventMsg{ev: ev, ok: ok}
	}
}

// userMessage maps an error from any layer to the text shown to the user.
func userMessage(err error) string {
	var mutErr *syncer.MutationError
	if errors.As(err, &mutErr) {
		return mutErr.UserMessage()
	}
	var fetchErr *store.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.UserMessage()
	}
	var valErr *form.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return err.Error()
}
