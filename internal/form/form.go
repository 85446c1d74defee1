// Package form owns the editable draft behind the create/edit order form:
// seeding it from an existing order, applying field edits and item toggles,
// validating on submit, and producing the write payload.
package form

import (
	"strings"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/store"
)

// ValidationError is a local, pre-submission failure. The form reports one
// violation at a time, in a fixed order: description before items.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	ErrDescriptionRequired = &ValidationError{"order description is required"}
	ErrItemsRequired       = &ValidationError{"select at least one item"}
)

// Draft is the in-progress order being created or edited. It exists for
// exactly one form session: discarded on cancel and on successful submit,
// never shared with the order store.
type Draft struct {
	Description string
	itemIDs     []int64 // toggle order, unique
}

// Session is one occupancy of the form: a draft plus the catalog cache it
// selects items from, and the order being edited, if any.
type Session struct {
	Draft   Draft
	Catalog *store.Catalog
	Editing *api.Order // nil when creating
}

// NewSession seeds a fresh draft. For edit the description and item ids are
// projected from the order; re-entering the form reseeds even for the same
// order.
func NewSession(editing *api.Order, catalog *store.Catalog) *Session {
	s := &Session{Catalog: catalog, Editing: editing}
	if editing != nil {
		s.Draft.Description = editing.Description
		s.Draft.itemIDs = editing.ItemIDs()
	}
	return s
}

// SetDescription replaces the description verbatim; no trimming while the
// user types.
func (s *Session) SetDescription(v string) {
	s.Draft.Description = v
}

// ToggleItem removes the id if selected, else appends it. Ids not present
// in the catalog cache are ignored, which keeps the selection a subset of
// the cache. Toggling twice restores the original selection.
func (s *Session) ToggleItem(id int64) {
	if !s.Catalog.Has(id) {
		return
	}
	for i, existing := range s.Draft.itemIDs {
		if existing == id {
			s.Draft.itemIDs = append(s.Draft.itemIDs[:i], s.Draft.itemIDs[i+1:]...)
			return
		}
	}
	s.Draft.itemIDs = append(s.Draft.itemIDs, id)
}

// Selected reports whether the item is currently part of the draft.
func (s *Session) Selected(id int64) bool {
	for _, existing := range s.Draft.itemIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// ItemIDs returns the selected ids in toggle order.
func (s *Session) ItemIDs() []int64 {
	ids := make([]int64, len(s.Draft.itemIDs))
	copy(ids, s.Draft.itemIDs)
	return ids
}

// Validate runs the submit-time checks and returns the first violation:
// a non-blank description, then at least one selected item. The catalog
// state is deliberately not checked here; a submit filed before the
// catalog resolves is legal since selection is only possible from loaded
// items.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Draft.Description) == "" {
		return ErrDescriptionRequired
	}
	if len(s.Draft.itemIDs) == 0 {
		return ErrItemsRequired
	}
	return nil
}

// Payload builds the write request. The description goes out as typed —
// validation trims only for the emptiness check, submission does not trim.
func (s *Session) Payload() api.OrderPayload {
	return api.OrderPayload{
		Description: s.Draft.Description,
		ItemIDs:     s.ItemIDs(),
	}
}
