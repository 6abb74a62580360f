package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tajrubatahsin16/LanguageShala-server/internal/auth"
)

// TokenHandler issues credentials. It performs no authentication of its
// own: the posted identity payload is assumed to be a pre-authenticated
// assertion from the upstream identity provider. That trust boundary is
// an external precondition of this service.
type TokenHandler struct {
	Secret []byte
}

// Issue handles POST /jwt.
func (h *TokenHandler) Issue(c *gin.Context) {
	var identity map[string]interface{}
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid identity payload"})
		return
	}

	email, _ := identity["email"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "email is required"})
		return
	}

	token, err := auth.IssueToken(identity, h.Secret)
	if err != nil {
		slog.Error("Failed to sign token", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
