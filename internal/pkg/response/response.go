package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with the given body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest reports missing or malformed request fields.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// UnprocessableEntity reports an upstream content-shape failure. The debug
// payload carries the offending url/text for diagnostics.
func UnprocessableEntity(c *gin.Context, message string, debug interface{}) {
	body := gin.H{"error": message}
	if debug != nil {
		body["debug"] = debug
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, body)
}

// InternalError reports a server-side failure.
func InternalError(c *gin.Context, message string, debug interface{}) {
	body := gin.H{"error": message}
	if debug != nil {
		body["debug"] = debug
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// NotFound handles unmatched routes.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not Found"})
}

// MethodNotAllowed handles wrong-verb requests to known routes.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed. Use POST."})
}
