package utils

import (
	"devfolio/internal/api/dto/common"
	"devfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError is a utility function for consistent error handling across
// the API. Error details are only exposed outside of release mode.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetGlobalLogger()
	logger.Error("%s %s from %s: %s: %v", c.Request.Method, c.Request.URL.Path, GetRealIP(c), message, err)

	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}
