package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leoslab/platform-api/internal/vault"
)

func (h *Handler) health(c *gin.Context) {
	health, err := h.client.CheckHealth(c.Request.Context())
	if err != nil {
		h.fail(c, "vault health", err)
		return
	}
	c.JSON(http.StatusOK, health)
}

// secret serves both reads and listings; ?list=true selects a listing
// because the wildcard path parameter cannot share a /list suffix route.
func (h *Handler) secret(c *gin.Context) {
	mount := c.Param("mount")
	path := strings.TrimPrefix(c.Param("path"), "/")

	if c.Query("list") == "true" {
		keys, err := h.client.ListSecrets(c.Request.Context(), mount, path)
		if err != nil {
			h.fail(c, "vault list secrets", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"mount": mount, "path": path, "secrets": keys})
		return
	}

	field := c.Query("field")
	data, err := h.client.GetSecret(c.Request.Context(), mount, path, field)
	if err != nil {
		h.fail(c, "vault get secret", err)
		return
	}

	resp := gin.H{"mount": mount, "path": path, "data": data}
	if field != "" {
		resp["field"] = field
	}
	c.JSON(http.StatusOK, resp)
}

// fail maps client errors onto HTTP codes using the same policy as the
// Jira handlers: 401 for auth, 404 for missing secrets, 503 when not
// configured, 502 for any other upstream fault.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, vault.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Vault is not configured"})
	case errors.Is(err, vault.ErrAuth):
		log.Printf("%s: authentication failed", op)
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Vault authentication failed"})
	case errors.Is(err, vault.ErrSecretNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Secret not found"})
	default:
		log.Printf("%s failed: %v", op, err)
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": "Vault request failed"})
	}
}
