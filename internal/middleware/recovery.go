package middleware

import (
	"exam_backend/internal/util"
	"exam_backend/pkg/logger"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery is gin's recovery with the standard 500 envelope carrying the panic
// message. The panic is logged through zap rather than gin's writer.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Stack("stack"),
		)
		util.Error(c, http.StatusInternalServerError, "An unexpected error occurred.", fmt.Sprint(recovered))
		c.Abort()
	})
}
