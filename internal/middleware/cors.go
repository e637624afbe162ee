package middleware

import (
	"github.com/gin-contrib/cors" // CORS middleware for Gin
	"github.com/gin-gonic/gin"    // Gin web framework
)

// CORS permits every origin, method and header, and exposes the
// Authorization response header to browser callers.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true                                            // Allow all origins
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"} // Allow all methods used by the API
	cfg.AllowHeaders = []string{"*"}                                      // Allow all request headers
	cfg.ExposeHeaders = []string{"Authorization"}                         // Expose the Authorization header
	return cors.New(cfg)
}
