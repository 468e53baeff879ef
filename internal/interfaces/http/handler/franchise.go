package handler

import (
	"github.com/gin-gonic/gin"

	appfranchise "github.com/franchises/backend/internal/application/franchise"
	"github.com/franchises/backend/internal/interfaces/http/dto"
)

// FranchiseHandler handles franchise-related API endpoints
type FranchiseHandler struct {
	BaseHandler
	franchiseService *appfranchise.FranchiseService
}

// NewFranchiseHandler creates a new FranchiseHandler
func NewFranchiseHandler(franchiseService *appfranchise.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{
		franchiseService: franchiseService,
	}
}

// RegisterRoutes registers franchise routes
func (h *FranchiseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	franchises := rg.Group("/franchises")
	{
		franchises.POST("", h.Create)
		franchises.PATCH("", h.UpdateName)
		franchises.POST("/:franchiseId/branches", h.AddBranch)
		franchises.PUT("/:franchiseId/branches/name", h.UpdateBranchName)
		franchises.GET("/:franchiseId/branches/highest-stock", h.HighestStockPerBranch)
	}
}

// Create registers a new franchise. A name collision is reported as a 409
// envelope rather than an error.
func (h *FranchiseHandler) Create(c *gin.Context) {
	var req dto.CreateFranchiseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.franchiseService.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result.NameTaken {
		h.Conflict(c, dto.MessageFranchiseNameTaken)
		return
	}

	h.Created(c, dto.MessageFranchiseCreated, result.Franchise)
}

// UpdateName renames a franchise. The target id travels in the body.
func (h *FranchiseHandler) UpdateName(c *gin.Context) {
	var req dto.UpdateFranchiseNameRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.franchiseService.Rename(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result.NameTaken {
		h.Conflict(c, dto.MessageFranchiseNameTaken)
		return
	}

	h.OK(c, dto.MessageFranchiseNameUpdated, result.Franchise)
}

// AddBranch creates a branch and attaches it to the franchise in the path.
// The payload is the updated franchise with the new branch id appended.
func (h *FranchiseHandler) AddBranch(c *gin.Context) {
	var req dto.AddBranchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	f, err := h.franchiseService.AddBranch(c.Request.Context(), c.Param("franchiseId"), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.MessageBranchCreated, f)
}

// UpdateBranchName renames a branch belonging to the franchise in the path.
// The payload is the owning franchise, which the rename leaves untouched.
func (h *FranchiseHandler) UpdateBranchName(c *gin.Context) {
	var req dto.UpdateBranchNameRequest
	if !h.BindJSON(c, &req) {
		return
	}

	f, err := h.franchiseService.RenameBranch(c.Request.Context(), c.Param("franchiseId"), req.ID, req.NewName)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.MessageBranchNameUpdated, f)
}

// HighestStockPerBranch reports, for every stocked branch of the franchise,
// the product holding the most stock.
func (h *FranchiseHandler) HighestStockPerBranch(c *gin.Context) {
	products, err := h.franchiseService.MaxStockPerBranch(c.Request.Context(), c.Param("franchiseId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.MessageHighestStockPerBranch, products)
}
