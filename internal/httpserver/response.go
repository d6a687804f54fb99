package httpserver

import (
	"net/http"
	"strings"

	"storefront-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// Every response carries the envelope the storefront client expects:
// {"error": null, ...payload} on success, {"error": true, "message": ...,
// "details": ...} on failure.

func respond(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"error": nil}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondOK(c *gin.Context, payload gin.H) {
	respond(c, http.StatusOK, payload)
}

// failer builds error envelopes; detail exposure is a deployment decision.
type failer struct {
	exposeDetails bool
}

func (f failer) fail(c *gin.Context, status int, message string, err error) {
	body := gin.H{"error": true, "message": message}
	if err != nil && f.exposeDetails {
		body["details"] = err.Error()
	}
	c.JSON(status, body)
}

func (f failer) failFields(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   true,
		"message": message,
		"details": fields,
	})
}

func (f failer) notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": true, "message": message})
}

func (f failer) unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": message})
}

// assetURL turns a stored relative path into an absolute URL, falling back to
// the default placeholder image.
func assetURL(base, path string) string {
	if path == "" {
		path = "default-image.jpg"
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func productImageURL(base string, p domain.Product) string {
	return assetURL(base, p.FirstImageURL())
}
