package store

import (
	"errors"

	"github.com/orderdesk/orderdesk/internal/api"
)

// FetchError marks a failed load of a remote resource. Recoverable by a
// user-initiated retry; nothing retries automatically.
type FetchError struct {
	Resource string // "orders" or "products"
	Err      error
}

func (e *FetchError) Error() string {
	return "fetch " + e.Resource + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// UserMessage extracts the text to show for a fetch failure: the remote
// detail when the transport surfaced one, else the error text itself.
func (e *FetchError) UserMessage() string {
	var apiErr *api.Error
	if errors.As(e.Err, &apiErr) {
		return apiErr.UserMessage()
	}
	return e.Err.Error()
}
