// Package store holds the client-side copies of remote data: the order
// list and the catalog cache. Each store is a small fetch state machine
// owned by a single goroutine; fetch results are applied through
// session-token guarded Apply calls so responses that outlived their
// session are discarded instead of clobbering newer state.
package store

// State is the fetch lifecycle of a store.
type State int

const (
	// StateIdle means no fetch has been started yet.
	StateIdle State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateReady means the last fetch succeeded and the data is current.
	StateReady
	// StateFailed means the last fetch failed; Err carries the cause.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}
