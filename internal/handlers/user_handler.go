package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tajrubatahsin16/LanguageShala-server/internal/middleware"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/store"
	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

// UserHandler serves identity CRUD and role grants.
type UserHandler struct {
	Users store.UserStore
}

// RegisterUserInput is the registration payload. Role is optional; an
// absent role means student.
type RegisterUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

// List handles GET /users (admin only).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not fetch users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, users)
}

// ListInstructors handles GET /allInstructors.
func (h *UserHandler) ListInstructors(c *gin.Context) {
	users, err := h.Users.ListUsersByRole(c.Request.Context(), models.RoleInstructor)
	if err != nil {
		slog.Error("Failed to list instructors", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not fetch instructors"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, users)
}

// Register handles POST /users. Registering an email that already exists
// is a no-op, not an error.
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	if _, err := h.Users.FindUserByEmail(c.Request.Context(), input.Email); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		slog.Error("Failed to look up user", "error", err, "email", input.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not register user"})
		return
	}

	user := models.User{
		Name:  input.Name,
		Email: input.Email,
		Photo: input.Photo,
		Role:  input.Role,
	}
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	if err := h.Users.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Raced another registration for the same email.
			c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
			return
		}
		slog.Error("Failed to create user", "error", err, "email", input.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not register user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// CheckAdmin handles GET /users/admin/:email. Only the requester's own
// admin status can be trusted: asking about any other email reports false
// without consulting the store.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": h.hasRole(c, models.RoleAdmin)})
}

// CheckInstructor handles GET /users/instructor/:email with the same
// self-check as CheckAdmin.
func (h *UserHandler) CheckInstructor(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"instructor": h.hasRole(c, models.RoleInstructor)})
}

func (h *UserHandler) hasRole(c *gin.Context, role string) bool {
	email := c.Param("email")
	if c.GetString(middleware.CtxEmail) != email {
		return false
	}
	user, err := h.Users.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		return false
	}
	return user.EffectiveRole() == role
}

// PromoteAdmin handles PATCH /users/admin/:id (admin only).
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	h.promote(c, models.RoleAdmin)
}

// PromoteInstructor handles PATCH /users/instructor/:id (admin only).
func (h *UserHandler) PromoteInstructor(c *gin.Context) {
	h.promote(c, models.RoleInstructor)
}

func (h *UserHandler) promote(c *gin.Context, role string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid user id"})
		return
	}

	user, err := h.Users.SetUserRole(c.Request.Context(), uint(id), role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "user not found"})
			return
		}
		slog.Error("Failed to set user role", "error", err, "userID", id, "role", role)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not update role"})
		return
	}

	// Grants must be visible before the cached role expires.
	middleware.InvalidateRoleCache(c.Request.Context(), user.Email)

	c.JSON(http.StatusOK, user)
}
