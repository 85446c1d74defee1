// Package mockserver is an in-memory implementation of the remote
// catalog-and-order contract. It exists for local development and for the
// client tests; it is not a product server and keeps no state across runs.
package mockserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/orderdesk/orderdesk/internal/api"
)

const maxDescriptionLen = 100

// Server holds the in-memory catalog and order book.
type Server struct {
	mu       sync.Mutex
	orders   map[int64]api.Order
	nextID   int64
	products []api.CatalogItem

	hub *hub
	log zerolog.Logger
}

// New creates a server seeded with the standard catalog.
func New(log zerolog.Logger) *Server {
	s := &Server{
		orders: make(map[int64]api.Order),
		nextID: 1,
		products: []api.CatalogItem{
			{ID: 1, Name: "HP laptop", Description: "This is HP laptop"},
			{ID: 2, Name: "lenovo laptop", Description: "This is lenovo"},
			{ID: 3, Name: "Car", Description: "This is Car"},
			{ID: 4, Name: "Bike", Description: "This is Bike"},
		},
		hub: newHub(log),
		log: log,
	}
	go s.hub.run()
	return s
}

// Handler returns the contract routes mounted on a Chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Contract routes live under /api, matching the real service.
	r.Route("/api", func(r chi.Router) {
		r.Get("/ws/orders", s.hub.serveWS)

		r.Get("/orders", s.listOrders)
		r.Post("/orders", s.createOrder)
		r.Get("/orders/{id}", s.getOrder)
		r.Put("/orders/{id}", s.updateOrder)
		r.Delete("/orders/{id}", s.deleteOrder)
		r.Get("/products", s.listProducts)
	})

	return r
}

// notifyOrdersChanged tells every watcher the order book moved.
func (s *Server) notifyOrdersChanged() {
	select {
	case s.hub.broadcast <- event{Type: api.EventOrdersChanged}:
	default:
	}
}

// --- Handlers ---

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	orders := make([]api.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	s.mu.Unlock()

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	s.mu.Lock()
	order, ok := s.orders[id]
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Order with id "+strconv.FormatInt(id, 10)+" not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload api.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, errMsg := s.resolvePayload(payload)
	if errMsg != "" {
		writeDetail(w, http.StatusBadRequest, errMsg)
		return
	}

	s.mu.Lock()
	order := api.Order{
		ID:          s.nextID,
		Description: payload.Description,
		Items:       items,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.orders[order.ID] = order
	s.mu.Unlock()

	s.log.Info().Int64("order_id", order.ID).Msg("order created")
	s.notifyOrdersChanged()
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var payload api.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, errMsg := s.resolvePayload(payload)
	if errMsg != "" {
		writeDetail(w, http.StatusBadRequest, errMsg)
		return
	}

	s.mu.Lock()
	order, ok := s.orders[id]
	if ok {
		order.Description = payload.Description
		order.Items = items
		s.orders[id] = order
	}
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Order with id "+strconv.FormatInt(id, 10)+" not found")
		return
	}

	s.log.Info().Int64("order_id", id).Msg("order updated")
	s.notifyOrdersChanged()
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	s.mu.Lock()
	_, ok := s.orders[id]
	if ok {
		delete(s.orders, id)
	}
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Order with id "+strconv.FormatInt(id, 10)+" not found")
		return
	}

	s.log.Info().Int64("order_id", id).Msg("order deleted")
	s.notifyOrdersChanged()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	products := make([]api.CatalogItem, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, products)
}

// resolvePayload validates a write request and maps its item ids to catalog
// items, keeping the requested order. The returned message is empty when
// the payload is valid.
func (s *Server) resolvePayload(payload api.OrderPayload) ([]api.CatalogItem, string) {
	if strings.TrimSpace(payload.Description) == "" {
		return nil, "order description is required"
	}
	if len(payload.Description) > maxDescriptionLen {
		return nil, "order description must be at most 100 characters"
	}
	if len(payload.ItemIDs) == 0 {
		return nil, "at least one product ID is required"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.CatalogItem, 0, len(payload.ItemIDs))
	for _, id := range payload.ItemIDs {
		found := false
		for _, p := range s.products {
			if p.ID == id {
				items = append(items, p)
				found = true
				break
			}
		}
		if !found {
			return nil, "One or more product IDs are invalid"
		}
	}
	return items, ""
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Too late to change the status; nothing useful to do.
		return
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
