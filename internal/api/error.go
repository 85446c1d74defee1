package api

// Error is a remote call failure normalized for display: a generic
// per-operation message plus the service-provided detail when the response
// body carried one.
type Error struct {
	Status  int    // HTTP status, 0 for transport-level failures
	Message string // generic fallback, e.g. "failed to fetch orders"
	Detail  string // remote-provided detail, may be empty
	cause   error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage is the text to surface to the user: the remote detail if the
// service provided one, else the generic message.
func (e *Error) UserMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}
