package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/controller"
)

func TestNewStartsInListMode(t *testing.T) {
	c := controller.New()

	assert.Equal(t, controller.ModeList, c.Mode())
	assert.Nil(t, c.Editing())
}

func TestShowCreateForm(t *testing.T) {
	c := controller.New()

	c.ShowCreateForm()
	assert.Equal(t, controller.ModeForm, c.Mode())
	assert.Nil(t, c.Editing())
}

func TestShowEditForm(t *testing.T) {
	c := controller.New()
	order := api.Order{ID: 42, Description: "Lamp"}

	c.ShowEditForm(order)
	assert.Equal(t, controller.ModeForm, c.Mode())
	require.NotNil(t, c.Editing())
	assert.Equal(t, int64(42), c.Editing().ID)
}

func TestCancelReturnsToList(t *testing.T) {
	c := controller.New()
	c.ShowEditForm(api.Order{ID: 1})

	c.Cancel()
	assert.Equal(t, controller.ModeList, c.Mode())
	assert.Nil(t, c.Editing())
}

func TestOnSubmitSuccessMatchesCancel(t *testing.T) {
	c := controller.New()
	c.ShowCreateForm()

	c.OnSubmitSuccess()
	assert.Equal(t, controller.ModeList, c.Mode())
	assert.Nil(t, c.Editing())
}

func TestEditingIsACopy(t *testing.T) {
	c := controller.New()
	order := api.Order{ID: 7, Description: "Desk chair"}

	c.ShowEditForm(order)
	order.Description = "changed after the fact"

	assert.Equal(t, "Desk chair", c.Editing().Description)
}
