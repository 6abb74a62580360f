package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tajrubatahsin16/LanguageShala-server/internal/store"
	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

// ClassHandler serves class-offering CRUD and the admin approval flow.
type ClassHandler struct {
	Classes store.ClassStore
}

// ClassInput is the payload for creating or replacing an offering.
type ClassInput struct {
	Name       string  `json:"name" binding:"required"`
	Instructor string  `json:"instructor"`
	Email      string  `json:"email" binding:"required,email"`
	Photo      string  `json:"photo"`
	Seats      int     `json:"seats" binding:"gte=0"`
	Price      float64 `json:"price" binding:"gte=0"`
}

// FeedbackInput is the payload for PATCH /classes/:id.
type FeedbackInput struct {
	Feedback string `json:"feedback" binding:"required"`
}

// ListAll handles GET /allClasses.
func (h *ClassHandler) ListAll(c *gin.Context) {
	classes, err := h.Classes.ListClasses(c.Request.Context())
	h.respondList(c, classes, err)
}

// ListApproved handles GET /approvedClasses.
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.Classes.ListClassesByStatus(c.Request.Context(), models.StatusApproved)
	h.respondList(c, classes, err)
}

// ListByEmail handles GET /classes with an optional instructor-email
// filter.
func (h *ClassHandler) ListByEmail(c *gin.Context) {
	var classes []models.Class
	var err error
	if email := c.Query("email"); email != "" {
		classes, err = h.Classes.ListClassesByEmail(c.Request.Context(), email)
	} else {
		classes, err = h.Classes.ListClasses(c.Request.Context())
	}
	h.respondList(c, classes, err)
}

func (h *ClassHandler) respondList(c *gin.Context, classes []models.Class, err error) {
	if err != nil {
		slog.Error("Failed to list classes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not fetch classes"})
		return
	}
	if classes == nil {
		classes = make([]models.Class, 0)
	}
	c.JSON(http.StatusOK, classes)
}

// Get handles GET /classes/:id.
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	class, err := h.Classes.FindClassByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "class not found"})
			return
		}
		slog.Error("Failed to fetch class", "error", err, "classID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not fetch class"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// Create handles POST /classes (instructor only). New offerings always
// start pending regardless of what the payload claims.
func (h *ClassHandler) Create(c *gin.Context) {
	var input ClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	class := models.Class{
		Name:       input.Name,
		Instructor: input.Instructor,
		Email:      input.Email,
		Photo:      input.Photo,
		Seats:      input.Seats,
		Price:      input.Price,
		Status:     models.StatusPending,
	}

	if err := h.Classes.CreateClass(c.Request.Context(), &class); err != nil {
		slog.Error("Failed to create class", "error", err, "name", input.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not create class"})
		return
	}
	c.JSON(http.StatusCreated, class)
}

// Update handles PUT /classes/:id (instructor only). Status and feedback
// are not touched here; those belong to the admin flow.
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input ClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	class, err := h.Classes.FindClassByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "class not found"})
			return
		}
		slog.Error("Failed to fetch class", "error", err, "classID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not update class"})
		return
	}

	class.Name = input.Name
	class.Instructor = input.Instructor
	class.Email = input.Email
	class.Photo = input.Photo
	class.Seats = input.Seats
	class.Price = input.Price

	if err := h.Classes.UpdateClass(c.Request.Context(), class); err != nil {
		slog.Error("Failed to update class", "error", err, "classID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not update class"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// SetFeedback handles PATCH /classes/:id (admin only).
func (h *ClassHandler) SetFeedback(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}
	class, err := h.Classes.SetClassFeedback(c.Request.Context(), id, input.Feedback)
	h.respondPatched(c, id, class, err)
}

// Approve handles PATCH /classes/approved/:id (admin only).
func (h *ClassHandler) Approve(c *gin.Context) {
	h.setStatus(c, models.StatusApproved)
}

// Deny handles PATCH /classes/denied/:id (admin only).
func (h *ClassHandler) Deny(c *gin.Context) {
	h.setStatus(c, models.StatusDenied)
}

func (h *ClassHandler) setStatus(c *gin.Context, status string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	class, err := h.Classes.SetClassStatus(c.Request.Context(), id, status)
	h.respondPatched(c, id, class, err)
}

func (h *ClassHandler) respondPatched(c *gin.Context, id uint, class *models.Class, err error) {
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "class not found"})
			return
		}
		slog.Error("Failed to update class", "error", err, "classID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not update class"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// parseID reads the :id path parameter, answering 400 itself when the
// value is not a number.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
