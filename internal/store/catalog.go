package store

import (
	"github.com/google/uuid"

	"github.com/orderdesk/orderdesk/internal/api"
)

// Catalog caches the purchasable items for one form session. It is fetched
// once per entry into the form; re-entering the form starts a fresh fetch.
// A failed fetch leaves the form usable for the description field only,
// with an empty selection list (read-degraded, not a hard block).
type Catalog struct {
	State State
	Items []api.CatalogItem
	Err   *FetchError

	session uuid.UUID
}

// NewCatalog creates an empty catalog cache.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Begin moves the cache to Loading for a new form session and returns the
// token the eventual Apply call must present.
func (c *Catalog) Begin() uuid.UUID {
	c.State = StateLoading
	c.Err = nil
	c.Items = nil
	c.session = uuid.New()
	return c.session
}

// Apply installs the fetched catalog. Returns false for stale tokens.
func (c *Catalog) Apply(session uuid.UUID, items []api.CatalogItem) bool {
	if session != c.session {
		return false
	}
	c.State = StateReady
	c.Err = nil
	c.Items = items
	return true
}

// ApplyError records a failed catalog fetch. Stale failures are dropped.
func (c *Catalog) ApplyError(session uuid.UUID, err error) bool {
	if session != c.session {
		return false
	}
	c.State = StateFailed
	c.Err = &FetchError{Resource: "products", Err: err}
	c.Items = nil
	return true
}

// Has reports whether the cache currently holds an item with the given id.
func (c *Catalog) Has(id int64) bool {
	for _, it := range c.Items {
		if it.ID == id {
			return true
		}
	}
	return false
}
