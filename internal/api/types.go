package api

import "time"

// CatalogItem is a purchasable item definition supplied by the remote
// service. Read-only on this side; the catalog cache holds them for the
// lifetime of one form session.
type CatalogItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Order is a persisted order as returned by the remote service.
type Order struct {
	ID          int64         `json:"id"`
	Description string        `json:"description"`
	Items       []CatalogItem `json:"items"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ItemIDs projects the order's items to their ids, preserving order.
func (o Order) ItemIDs() []int64 {
	ids := make([]int64, len(o.Items))
	for i, it := range o.Items {
		ids[i] = it.ID
	}
	return ids
}

// OrderPayload is the write request body for create and update calls.
// The description is sent exactly as typed; item ids keep toggle order.
type OrderPayload struct {
	Description string  `json:"description"`
	ItemIDs     []int64 `json:"item_ids"`
}
