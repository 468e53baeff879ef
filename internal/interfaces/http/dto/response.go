package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franchises/backend/internal/domain/shared"
)

// Response is the envelope every endpoint returns. Code mirrors the HTTP
// status so clients reading only the body still see the outcome, and
// Response carries the payload or an explicit null.
type Response struct {
	Message  string `json:"message"`
	Code     int    `json:"code"`
	Response any    `json:"response"`
}

// OK writes a 200 envelope with the given payload.
func OK(c *gin.Context, message string, payload any) {
	respond(c, http.StatusOK, message, payload)
}

// Created writes a 201 envelope with the given payload.
func Created(c *gin.Context, message string, payload any) {
	respond(c, http.StatusCreated, message, payload)
}

// Conflict writes a 409 envelope with a null payload. Used for the
// name-taken outcomes, which are reported rather than thrown.
func Conflict(c *gin.Context, message string) {
	respond(c, http.StatusConflict, message, nil)
}

// BadRequest writes a 400 envelope. Binding failures attach the field
// errors as the payload so callers can see what was rejected.
func BadRequest(c *gin.Context, message string, details any) {
	respond(c, http.StatusBadRequest, message, details)
}

// Error maps a failure to its HTTP status and writes the envelope. The
// message is taken from the error itself; anything without a recognized
// kind is masked as an internal error so store details never leak.
func Error(c *gin.Context, err error) {
	status := StatusForKind(shared.KindOf(err))
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = MessageError
	}
	respond(c, status, message, nil)
}

func respond(c *gin.Context, status int, message string, payload any) {
	c.JSON(status, Response{
		Message:  message,
		Code:     status,
		Response: payload,
	})
}

// StatusForKind resolves a domain failure kind to its HTTP status. The
// kind set is closed, so the default arm only catches KindInternal and
// unclassified errors.
func StatusForKind(kind shared.Kind) int {
	switch kind {
	case shared.KindResourceNotFound,
		shared.KindBranchNotFound,
		shared.KindProductNotFound:
		return http.StatusNotFound
	case shared.KindProductAlreadyExists,
		shared.KindDuplicateKey,
		shared.KindVersionConflict:
		return http.StatusConflict
	case shared.KindBranchNameAlreadyUpToDate,
		shared.KindProductNameAlreadyUpToDate,
		shared.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
