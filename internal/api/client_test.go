package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/api"
	"github.com/orderdesk/orderdesk/internal/mockserver"
)

// newTestClient spins up the in-memory contract server and a client
// pointed at it.
func newTestClient(t *testing.T) *api.Client {
	t.Helper()

	ts := httptest.NewServer(mockserver.New(zerolog.Nop()).Handler())
	t.Cleanup(ts.Close)

	client, err := api.New(api.Config{BaseURL: ts.URL + "/api", Logger: zerolog.Nop()})
	require.NoError(t, err)
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := api.New(api.Config{})
	assert.Error(t, err)
}

func TestListProducts(t *testing.T) {
	client := newTestClient(t)

	items, err := client.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 4)
	assert.Equal(t, "HP laptop", items[0].Name)
	assert.Equal(t, int64(4), items[3].ID)
}

func TestCreateThenListRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateOrder(ctx, api.OrderPayload{
		Description: "Book A",
		ItemIDs:     []int64{1, 2},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "Book A", orders[0].Description)
	assert.Equal(t, []int64{1, 2}, orders[0].ItemIDs())
}

func TestGetOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateOrder(ctx, api.OrderPayload{Description: "Solo", ItemIDs: []int64{3}})
	require.NoError(t, err)

	got, err := client.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solo", got.Description)
}

func TestUpdateOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateOrder(ctx, api.OrderPayload{Description: "before", ItemIDs: []int64{1}})
	require.NoError(t, err)

	updated, err := client.UpdateOrder(ctx, created.ID, api.OrderPayload{
		Description: "after",
		ItemIDs:     []int64{2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Description)
	assert.Equal(t, []int64{2, 3}, updated.ItemIDs())

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "after", orders[0].Description)
}

func TestDeleteOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateOrder(ctx, api.OrderPayload{Description: "doomed", ItemIDs: []int64{4}})
	require.NoError(t, err)

	require.NoError(t, client.DeleteOrder(ctx, created.ID))

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestNotFoundCarriesDetail(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetOrder(context.Background(), 12345)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Order with id 12345 not found", apiErr.Detail)
	assert.Equal(t, "Order with id 12345 not found", apiErr.UserMessage())
}

func TestInvalidItemIDRejected(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateOrder(context.Background(), api.OrderPayload{
		Description: "bad",
		ItemIDs:     []int64{999},
	})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "One or more product IDs are invalid", apiErr.Detail)
}

func TestNonJSONErrorBodyFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plain text panic", http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	client, err := api.New(api.Config{BaseURL: ts.URL, Logger: zerolog.Nop()})
	require.NoError(t, err)

	_, err = client.ListOrders(context.Background())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Detail)
	assert.Equal(t, "failed to fetch orders", apiErr.UserMessage())
}

func TestTransportFailureNormalized(t *testing.T) {
	// Nothing listens here; the dial fails immediately.
	client, err := api.New(api.Config{BaseURL: "http://127.0.0.1:1", Logger: zerolog.Nop()})
	require.NoError(t, err)

	_, err = client.ListOrders(context.Background())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "failed to fetch orders", apiErr.UserMessage())
	// The transport cause stays reachable for diagnostics.
	assert.NotNil(t, errors.Unwrap(apiErr))
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListOrders(ctx)
	assert.Error(t, err)
}
