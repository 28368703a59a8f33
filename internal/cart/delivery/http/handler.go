package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kemasindo/storefront/internal/cart/domain"
	"github.com/kemasindo/storefront/internal/cart/usecase/command"
	"github.com/kemasindo/storefront/internal/cart/usecase/query"
	catalog "github.com/kemasindo/storefront/internal/catalog/domain"
	"github.com/kemasindo/storefront/internal/identity"
	"github.com/kemasindo/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	// Command handlers
	addHandler         *command.AddToCartHandler
	removeHandler      *command.RemoveItemHandler
	setQuantityHandler *command.SetQuantityHandler

	// Query handlers
	getCartHandler *query.GetCartHandler

	gate           identity.Gate
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddToCartHandler,
	removeHandler *command.RemoveItemHandler,
	setQuantityHandler *command.SetQuantityHandler,
	getCartHandler *query.GetCartHandler,
	gate identity.Gate,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to cart service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		addHandler:         addHandler,
		removeHandler:      removeHandler,
		setQuantityHandler: setQuantityHandler,
		getCartHandler:     getCartHandler,
		gate:               gate,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
	}
}

type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func currentUserID(r *http.Request) uint {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		return 0
	}
	return id.UserID
}

// AddToCart handles POST /api/cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.addHandler.Handle(r.Context(), command.AddToCartCommand{
		UserID:    currentUserID(r),
		ProductID: req.ProductID,
	})
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: result.Product.Name + " added to cart!",
		Data: map[string]interface{}{
			"item":    result.Item,
			"product": result.Product,
		},
	})
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.getCartHandler.Handle(r.Context(), query.GetCartQuery{
		UserID: currentUserID(r),
	})
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"items": items,
			"count": len(items),
		},
	})
}

// RemoveItem handles DELETE /api/cart/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid cart item ID",
		})
		return
	}

	err = h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		UserID: currentUserID(r),
		ItemID: uint(itemID),
	})
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
	})
}

// SetQuantity handles PATCH /api/cart/{id}/quantity
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid cart item ID",
		})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.setQuantityHandler.Handle(r.Context(), command.SetQuantityCommand{
		UserID:   currentUserID(r),
		ItemID:   uint(itemID),
		Quantity: req.Quantity,
	})
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
		Data:    item,
	})
}

// SignOut handles POST /api/cart/signout, forwarding to the auth service
func (h *CartHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.SignOut(r.Context()); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Sign-out failed")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   "Sign-out failed",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Signed out",
	})
}

// respondCartError maps usecase errors onto the notification surface.
// Every outcome lands here or in a success body; nothing propagates
// uncaught.
func (h *CartHandler) respondCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		respondJSON(w, http.StatusUnauthorized, Response{
			Success:  false,
			Error:    "Please sign in to add items to cart",
			Redirect: "/auth",
		})

	case errors.Is(err, catalog.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})

	case errors.Is(err, domain.ErrItemNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Cart item not found",
		})

	case errors.Is(err, domain.ErrCartIntegrity):
		logger.Error(r.Context()).Err(err).Msg("Cart integrity violation detected")
		respondJSON(w, http.StatusConflict, Response{
			Success: false,
			Error:   "Cart is in an inconsistent state, please contact support",
		})

	default:
		logger.Error(r.Context()).Err(err).Msg("Cart operation failed")
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Cart operation failed",
		})
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", AuthMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", AuthMiddleware(h.AddToCart))).Methods("POST")
	router.HandleFunc("/api/cart/signout", h.metricsMiddleware("/api/cart/signout", AuthMiddleware(h.SignOut))).Methods("POST")
	router.HandleFunc("/api/cart/{id}", h.metricsMiddleware("/api/cart/{id}", AuthMiddleware(h.RemoveItem))).Methods("DELETE")
	router.HandleFunc("/api/cart/{id}/quantity", h.metricsMiddleware("/api/cart/{id}/quantity", AuthMiddleware(h.SetQuantity))).Methods("PATCH")
}

// RegisterHealthCheck registers health check endpoint
func (h *CartHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Cart service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
