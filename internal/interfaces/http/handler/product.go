package handler

import (
	"github.com/gin-gonic/gin"

	appfranchise "github.com/franchises/backend/internal/application/franchise"
	"github.com/franchises/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *appfranchise.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *appfranchise.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.PUT("/:productId/name", h.UpdateName)
	}
}

// UpdateName renames a product across the whole catalog. The new name
// travels as the newName query parameter.
func (h *ProductHandler) UpdateName(c *gin.Context) {
	newName := c.Query("newName")
	if newName == "" {
		dto.BadRequest(c, dto.MessageErrorBody, []string{"newName: This field is required"})
		return
	}

	product, err := h.productService.Rename(c.Request.Context(), c.Param("productId"), newName)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.MessageProductNameUpdated, product)
}
