package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/errors"
)

// MessageResponse is the body returned for message-only results
// ("Logged out successfully", "Reply deleted") and for errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse is the body returned by paginated list endpoints.
type ListResponse struct {
	Total int64       `json:"total"`
	Data  interface{} `json:"data"`
}

// SuccessResponse sends data with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends data with 201 Created.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// MessageSuccessResponse sends a message-only 200 body.
func MessageSuccessResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// ListSuccessResponse sends a paginated list body.
func ListSuccessResponse(c *gin.Context, total int64, data interface{}) {
	c.JSON(http.StatusOK, ListResponse{Total: total, Data: data})
}

// ErrorResponse sends an error body with the given status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// ErrorResponseWithError maps an error to its HTTP status. Typed AppErrors
// carry their own status; anything else is an opaque 500 so internal
// details never leak to clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, MessageResponse{Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
}
