// Package syncer orchestrates the create/update/delete calls against the
// remote service. A failed mutation surfaces a message and leaves every
// other piece of state exactly where it was; the caller re-fetches the
// order list after any success.
package syncer

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/orderdesk/orderdesk/internal/api"
)

// ErrDeclined is returned by Remove when the confirmation capability
// rejects the delete. No request is made in that case.
var ErrDeclined = errors.New("delete not confirmed")

// MutationError marks a failed create, update or delete call. The
// operation is over but nothing else changed; the user can retry or cancel.
type MutationError struct {
	Op  string // "create", "update" or "delete"
	Err error
}

func (e *MutationError) Error() string {
	return e.Op + " order: " + e.Err.Error()
}

func (e *MutationError) Unwrap() error { return e.Err }

// UserMessage extracts the text to show: the remote-provided detail when
// present, else the transport's generic fallback.
func (e *MutationError) UserMessage() string {
	var apiErr *api.Error
	if errors.As(e.Err, &apiErr) {
		return apiErr.UserMessage()
	}
	return e.Err.Error()
}

// OrderWriter is the client surface the orchestrator needs.
// Satisfied by *api.Client; narrow interface for testability.
type OrderWriter interface {
	CreateOrder(ctx context.Context, payload api.OrderPayload) (*api.Order, error)
	UpdateOrder(ctx context.Context, id int64, payload api.OrderPayload) (*api.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// Confirmer asks the user to approve a destructive action before it runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Orchestrator issues the mutations. One operation is in flight per
// form or row at a time; the caller disables the trigger for the duration.
type Orchestrator struct {
	client  OrderWriter
	confirm Confirmer
	log     zerolog.Logger
}

// New creates an orchestrator using the given transport and confirmation
// capabilities.
func New(client OrderWriter, confirm Confirmer, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{client: client, confirm: confirm, log: log}
}

// Create files a new order and returns the created record.
func (o *Orchestrator) Create(ctx context.Context, payload api.OrderPayload) (*api.Order, error) {
	order, err := o.client.CreateOrder(ctx, payload)
	if err != nil {
		o.log.Debug().Err(err).Msg("create order failed")
		return nil, &MutationError{Op: "create", Err: err}
	}
	o.log.Info().Int64("order_id", order.ID).Msg("order created")
	return order, nil
}

// Update replaces the order with the given id.
func (o *Orchestrator) Update(ctx context.Context, id int64, payload api.OrderPayload) (*api.Order, error) {
	order, err := o.client.UpdateOrder(ctx, id, payload)
	if err != nil {
		o.log.Debug().Err(err).Int64("order_id", id).Msg("update order failed")
		return nil, &MutationError{Op: "update", Err: err}
	}
	o.log.Info().Int64("order_id", id).Msg("order updated")
	return order, nil
}

// Remove deletes the order after an explicit confirmation. Without it the
// endpoint is never called and ErrDeclined comes back.
func (o *Orchestrator) Remove(ctx context.Context, id int64) error {
	if !o.confirm.Confirm("Are you sure you want to delete this order?") {
		return ErrDeclined
	}
	if err := o.client.DeleteOrder(ctx, id); err != nil {
		o.log.Debug().Err(err).Int64("order_id", id).Msg("delete order failed")
		return &MutationError{Op: "delete", Err: err}
	}
	o.log.Info().Int64("order_id", id).Msg("order deleted")
	return nil
}
