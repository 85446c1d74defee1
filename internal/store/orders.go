package store

import (
	"github.com/google/uuid"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/search"
)

// Orders holds the last fetched order list plus the derived filtered view.
// The list is replaced wholesale on every successful refresh; Filtered is
// always exactly search.Filter(Orders, Query) and never mutated on its own.
type Orders struct {
	State    State
	Orders   []api.Order
	Filtered []api.Order
	Query    string
	Err      *FetchError

	session uuid.UUID
}

// NewOrders creates an empty order store.
func NewOrders() *Orders {
	return &Orders{}
}

// BeginRefresh moves the store to Loading and returns the token the
// eventual Apply call must present. Starting a new refresh invalidates any
// response still in flight from a previous one.
func (s *Orders) BeginRefresh() uuid.UUID {
	s.State = StateLoading
	s.Err = nil
	s.session = uuid.New()
	return s.session
}

// Apply installs a fetched order list. Returns false when the token does
// not belong to the current refresh; the stale result is dropped untouched.
func (s *Orders) Apply(session uuid.UUID, orders []api.Order) bool {
	if session != s.session {
		return false
	}
	s.State = StateReady
	s.Err = nil
	s.Orders = orders
	s.Filtered = search.Filter(s.Orders, s.Query)
	return true
}

// ApplyError records a failed fetch. Stale failures are dropped like stale
// results.
func (s *Orders) ApplyError(session uuid.UUID, err error) bool {
	if session != s.session {
		return false
	}
	s.State = StateFailed
	s.Err = &FetchError{Resource: "orders", Err: err}
	return true
}

// SetQuery updates the search query and recomputes the filtered view.
func (s *Orders) SetQuery(query string) {
	s.Query = query
	s.Filtered = search.Filter(s.Orders, s.Query)
}
