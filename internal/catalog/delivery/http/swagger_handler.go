package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListProducts godoc
// @Summary List the product catalog
// @Description Get the full catalog snapshot ordered by newest first, optionally narrowed to one category
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter (all, softBox, foodBox)"
// @Success 200 {object} object{success=bool,data=object{products=array,count=int,category=string}}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product by its ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ListCategories godoc
// @Summary List known categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{categories=array}}
// @Router /api/products/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// EstimatePrice godoc
// @Summary Instant price quote
// @Description Quote = round(baseUnitPrice * quantity * sizeMultiplier); independent of stored product prices
// @Tags Catalog
// @Produce json
// @Param quantity query int true "Order quantity (positive)"
// @Param size query string true "Box size (small, medium, large)"
// @Success 200 {object} object{success=bool,data=object{quantity=int,size=string,amount=int,currency=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products/estimate [get]
func (h *CatalogHandler) EstimatePriceDoc() {}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new catalog product (Admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,category=string,price=int,stock=int,description=string,image_url=string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
