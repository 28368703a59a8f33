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

	"github.com/kemasindo/storefront/internal/catalog/domain"
	"github.com/kemasindo/storefront/internal/catalog/usecase/command"
	"github.com/kemasindo/storefront/internal/catalog/usecase/query"
	"github.com/kemasindo/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler

	// Query handlers
	listHandler     *query.ListProductsHandler
	getHandler      *query.GetProductHandler
	estimateHandler *query.EstimatePriceHandler

	repo           domain.CatalogRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(repo domain.CatalogRepository) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		createHandler:   command.NewCreateProductHandler(repo),
		listHandler:     query.NewListProductsHandler(repo),
		getHandler:      query.NewGetProductHandler(repo),
		estimateHandler: query.NewEstimatePriceHandler(),
		repo:            repo,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListProducts handles GET /api/products
//
// The snapshot is all-or-nothing: a store failure returns no products
// at all, and the body carries the notification message for the UI.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{Category: category})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("category", category).Msg("Failed to load products")
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Failed to load products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"count":    len(products),
			"category": category,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: uint(id)})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Uint64("id", id).Msg("Failed to get product")
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Failed to load product",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListCategories handles GET /api/products/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"categories": domain.KnownCategories,
		},
	})
}

// EstimatePrice handles GET /api/products/estimate
func (h *CatalogHandler) EstimatePrice(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid quantity",
		})
		return
	}
	size := r.URL.Query().Get("size")

	amount, err := h.estimateHandler.Handle(query.EstimatePriceQuery{
		Quantity: quantity,
		Size:     size,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"quantity": quantity,
			"size":     size,
			"amount":   amount,
			"currency": "IDR",
		},
	})
}

// CreateProduct handles POST /api/products (admin only, gated upstream)
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Price       int64  `json:"price"`
		Stock       int    `json:"stock"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/categories", h.metricsMiddleware("/api/products/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/products/estimate", h.metricsMiddleware("/api/products/estimate", h.EstimatePrice)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
