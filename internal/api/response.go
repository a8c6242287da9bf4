package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// fail renders the shared failure envelope
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// RecoveryHandler maps an unexpected panic to a generic 500 in the same
// envelope, so no handler error ever crashes the process
func RecoveryHandler(c *gin.Context, err any) {
	// Log the panic with request context
	logrus.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path, // Request path
		"error": err,                // Recovered value
	}).Error("Unhandled panic")
	// Render the generic server error
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}
