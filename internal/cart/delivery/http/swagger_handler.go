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

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Increment-or-insert for the (user, product) pair; each call adds exactly one unit
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int} true "Product to add"
// @Success 200 {object} object{success=bool,message=string,data=object{item=object,product=object}}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /api/cart [post]
func (h *CartHandler) AddToCartDoc() {}

// GetCart godoc
// @Summary Get the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{items=array,count=int}}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// RemoveItem godoc
// @Summary Remove a cart item
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/{id} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// SetQuantity godoc
// @Summary Set a cart item's quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body object{quantity=int} true "New quantity (positive)"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /api/cart/{id}/quantity [patch]
func (h *CartHandler) SetQuantityDoc() {}

// SignOut godoc
// @Summary Sign out of the current session
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/cart/signout [post]
func (h *CartHandler) SignOutDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *CartHandler) HealthCheckDoc() {}
