// utils/apierror.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError is the error kind every handler maps onto an HTTP status:
// validation (400, includes not-found-by-id), unauthorized (401),
// forbidden (403, reserved) and internal (500).
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

// BadRequest covers caller-supplied bad input, business-rule violations and
// not-found-by-id lookups.
func BadRequest(message string) *ApiError {
	return &ApiError{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized() *ApiError {
	return &ApiError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
}

// Forbidden is reserved; no endpoint raises it yet.
func Forbidden() *ApiError {
	return &ApiError{Status: http.StatusForbidden, Message: "access restricted"}
}

func Internal() *ApiError {
	return &ApiError{Status: http.StatusInternalServerError, Message: "unexpected error"}
}

// RespondWithError writes the shared {message} error body.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// AbortWithError maps an ApiError to its status code and {message} body.
func AbortWithError(c *gin.Context, err *ApiError) {
	RespondWithError(c, err.Status, err.Message)
}
