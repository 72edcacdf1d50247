package util

import (
	"exam_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every handler writes.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, Response{
		Status:  StatusError,
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, nil)
}

func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
}

func InternalServerError(c *gin.Context, details interface{}) {
	Error(c, http.StatusInternalServerError, "An unexpected error occurred.", details)
}

// Fail writes err using its kind; server-side kinds are logged.
func Fail(c *gin.Context, err error) {
	appErr := AsAppError(err)
	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Log.Error(appErr.Message,
			zap.String("kind", string(appErr.Kind)),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
	}
	Error(c, status, appErr.Message, appErr.Details)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c, err.Error())
}
