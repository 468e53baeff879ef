package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/franchises/backend/internal/interfaces/http/dto"
	"github.com/franchises/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 envelope
func (h *BaseHandler) OK(c *gin.Context, message string, payload any) {
	dto.OK(c, message, payload)
}

// Created sends a 201 envelope
func (h *BaseHandler) Created(c *gin.Context, message string, payload any) {
	dto.Created(c, message, payload)
}

// Conflict sends a 409 envelope with a null payload
func (h *BaseHandler) Conflict(c *gin.Context, message string) {
	dto.Conflict(c, message)
}

// HandleError maps a domain failure to its HTTP response
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	dto.Error(c, err)
}

// BindJSON binds the request body and writes the 400 envelope on failure.
// Returns false when the request has already been answered.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.HandleBindingError(c, err)
		return false
	}
	return true
}
