// Package search filters the order list for the list view.
package search

import (
	"strconv"
	"strings"

	"github.com/orderdesk/orderdesk/internal/api"
)

// Filter returns the orders matching the query. A blank query returns the
// input slice unchanged. Otherwise an order matches when its id rendered in
// base 10 contains the query as a substring, or its description contains it
// case-insensitively. Input order is preserved.
func Filter(orders []api.Order, query string) []api.Order {
	if strings.TrimSpace(query) == "" {
		return orders
	}

	term := strings.ToLower(query)
	filtered := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strconv.FormatInt(o.ID, 10), term) ||
			strings.Contains(strings.ToLower(o.Description), term) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
