// Package controller is the top-level view switch: list or form, and which
// order (if any) the form is editing. Pure state transitions, no I/O.
package controller

import "github.com/orderdesk/orderdesk/internal/api"

// Mode is the active top-level view.
type Mode int

const (
	// ModeList shows the searchable order list.
	ModeList Mode = iota
	// ModeForm shows the create/edit form.
	ModeForm
)

func (m Mode) String() string {
	if m == ModeForm {
		return "form"
	}
	return "list"
}

// Controller tracks the active mode and edit target.
type Controller struct {
	mode    Mode
	editing *api.Order
}

// New creates a controller in list mode.
func New() *Controller {
	return &Controller{mode: ModeList}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// Editing returns the order the form is editing, or nil when creating or
// in list mode. The value is the one handed to ShowEditForm, not re-fetched.
func (c *Controller) Editing() *api.Order { return c.editing }

// ShowList switches to the order list.
func (c *Controller) ShowList() {
	c.mode = ModeList
	c.editing = nil
}

// ShowCreateForm opens the form with no edit target.
func (c *Controller) ShowCreateForm() {
	c.mode = ModeForm
	c.editing = nil
}

// ShowEditForm opens the form for an order previously returned by the
// order store.
func (c *Controller) ShowEditForm(order api.Order) {
	c.mode = ModeForm
	c.editing = &order
}

// Cancel abandons the form and returns to the list.
func (c *Controller) Cancel() { c.ShowList() }

// OnSubmitSuccess returns to the list after a successful create or update.
// Same resulting state as Cancel; the names record the caller's intent.
func (c *Controller) OnSubmitSuccess() { c.ShowList() }
