package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appfranchise "github.com/franchises/backend/internal/application/franchise"
	"github.com/franchises/backend/internal/interfaces/http/dto"
)

// BranchHandler handles branch-related API endpoints
type BranchHandler struct {
	BaseHandler
	branchService *appfranchise.BranchService
}

// NewBranchHandler creates a new BranchHandler
func NewBranchHandler(branchService *appfranchise.BranchService) *BranchHandler {
	return &BranchHandler{
		branchService: branchService,
	}
}

// RegisterRoutes registers branch routes
func (h *BranchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	branches := rg.Group("/branches")
	{
		branches.PUT("/:branchId/products", h.AddProduct)
		branches.DELETE("/:branchId/products/:productId", h.RemoveProduct)
		branches.PUT("/:branchId/products/:productId/stock", h.UpdateProductStock)
	}
}

// AddProduct attaches a product to the branch, creating the product on
// first reference. Stock in the body only seeds a newly created product.
func (h *BranchHandler) AddProduct(c *gin.Context) {
	var req dto.AddProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	branch, err := h.branchService.AddProduct(c.Request.Context(), c.Param("branchId"), req.Name, req.Stock)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.MessageProductCreated, branch)
}

// RemoveProduct detaches a product from the branch. The product document
// itself is kept.
func (h *BranchHandler) RemoveProduct(c *gin.Context) {
	branch, err := h.branchService.RemoveProduct(c.Request.Context(), c.Param("branchId"), c.Param("productId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.MessageProductRemoved, branch)
}

// UpdateProductStock sets the stock of a product listed by the branch. The
// new value travels as the newStock query parameter.
func (h *BranchHandler) UpdateProductStock(c *gin.Context) {
	newStock, err := strconv.Atoi(c.Query("newStock"))
	if err != nil {
		dto.BadRequest(c, dto.MessageErrorBody, []string{"newStock: Must be an integer"})
		return
	}

	product, err := h.branchService.UpdateStock(c.Request.Context(), c.Param("branchId"), c.Param("productId"), newStock)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.MessageProductStockUpdated, product)
}
