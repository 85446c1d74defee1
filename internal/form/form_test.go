package form_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/form"
	"github.com/orderdesk/orderdesk/internal/store"
)

func readyCatalog(t *testing.T) *store.Catalog {
	t.Helper()
	c := store.NewCatalog()
	require.True(t, c.Apply(c.Begin(), []api.CatalogItem{
		{ID: 1, Name: "HP laptop"},
		{ID: 2, Name: "lenovo laptop"},
		{ID: 3, Name: "Car"},
		{ID: 4, Name: "Bike"},
	}))
	return c
}

func TestNewSessionCreateStartsEmpty(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))

	assert.Equal(t, "", s.Draft.Description)
	assert.Empty(t, s.ItemIDs())
	assert.Nil(t, s.Editing)
}

func TestNewSessionEditSeedsFromOrder(t *testing.T) {
	order := api.Order{
		ID:          12,
		Description: "Office kit",
		Items: []api.CatalogItem{
			{ID: 2, Name: "lenovo laptop"},
			{ID: 4, Name: "Bike"},
		},
		CreatedAt: time.Now(),
	}

	s := form.NewSession(&order, readyCatalog(t))

	assert.Equal(t, "Office kit", s.Draft.Description)
	assert.Equal(t, []int64{2, 4}, s.ItemIDs())
}

func TestToggleItemAddsAndRemoves(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))

	s.ToggleItem(3)
	assert.Equal(t, []int64{3}, s.ItemIDs())
	assert.True(t, s.Selected(3))

	// Toggling twice restores the original selection.
	s.ToggleItem(3)
	assert.Empty(t, s.ItemIDs())
	assert.False(t, s.Selected(3))
}

func TestToggleItemKeepsToggleOrder(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))

	s.ToggleItem(4)
	s.ToggleItem(1)
	s.ToggleItem(2)
	s.ToggleItem(1) // deselect

	assert.Equal(t, []int64{4, 2}, s.ItemIDs())
}

func TestToggleItemUnknownIDIsNoOp(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))

	s.ToggleItem(99)
	assert.Empty(t, s.ItemIDs())
}

func TestToggleItemFailedCatalogIsNoOp(t *testing.T) {
	c := store.NewCatalog()
	require.True(t, c.ApplyError(c.Begin(), &api.Error{Message: "failed to fetch products"}))

	s := form.NewSession(nil, c)
	s.ToggleItem(1)
	assert.Empty(t, s.ItemIDs())

	// The description still works in the degraded form.
	s.SetDescription("still typing")
	assert.Equal(t, "still typing", s.Draft.Description)
}

func TestValidateDescriptionBeforeItems(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))

	// Both violations present: the description error wins.
	err := s.Validate()
	assert.ErrorIs(t, err, form.ErrDescriptionRequired)

	// Whitespace does not count as a description.
	s.SetDescription("   ")
	assert.ErrorIs(t, s.Validate(), form.ErrDescriptionRequired)

	s.SetDescription("Book A")
	assert.ErrorIs(t, s.Validate(), form.ErrItemsRequired)

	s.ToggleItem(1)
	assert.NoError(t, s.Validate())
}

func TestValidationErrorType(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))

	var valErr *form.ValidationError
	require.ErrorAs(t, s.Validate(), &valErr)
	assert.Equal(t, "order description is required", valErr.Error())
}

func TestPayloadKeepsDescriptionUntrimmed(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))

	// Validation trims for the emptiness check only; the payload carries
	// the description exactly as typed.
	s.SetDescription("  Book A  ")
	s.ToggleItem(1)
	s.ToggleItem(2)
	require.NoError(t, s.Validate())

	payload := s.Payload()
	assert.Equal(t, "  Book A  ", payload.Description)
	assert.Equal(t, []int64{1, 2}, payload.ItemIDs)
}

func TestPayloadIsACopy(t *testing.T) {
	s := form.NewSession(nil, readyCatalog(t))
	s.ToggleItem(1)

	payload := s.Payload()
	payload.ItemIDs[0] = 99

	assert.Equal(t, []int64{1}, s.ItemIDs())
}
