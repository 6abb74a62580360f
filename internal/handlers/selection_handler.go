package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tajrubatahsin16/LanguageShala-server/internal/enrollment"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/middleware"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/store"
	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

// SelectionHandler serves the pending-selection surface. Writes go
// through the coordinator so the one-live-selection policy holds; reads
// hit the store directly.
type SelectionHandler struct {
	Selections  store.SelectionStore
	Coordinator *enrollment.Coordinator
}

// SelectInput is the payload for POST /selectedClasses. The student email
// comes from the verified token, never from the body.
type SelectInput struct {
	ClassID   uint    `json:"classId" binding:"required"`
	ClassName string  `json:"className"`
	Price     float64 `json:"price" binding:"gte=0"`
}

// Select handles POST /selectedClasses. A second selection of the same
// class by the same student is rejected with 409.
func (h *SelectionHandler) Select(c *gin.Context) {
	var input SelectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	sel := models.SelectedClass{
		StudentEmail: c.GetString(middleware.CtxEmail),
		ClassID:      input.ClassID,
		ClassName:    input.ClassName,
		Price:        input.Price,
	}

	if err := h.Coordinator.Select(c.Request.Context(), &sel); err != nil {
		if errors.Is(err, enrollment.ErrAlreadySelected) {
			c.JSON(http.StatusConflict, gin.H{"error": true, "message": "class already selected"})
			return
		}
		slog.Error("Failed to select class", "error", err, "classID", input.ClassID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not select class"})
		return
	}
	c.JSON(http.StatusCreated, sel)
}

// List handles GET /selectedClasses with an optional ?sEmail= filter.
func (h *SelectionHandler) List(c *gin.Context) {
	var sels []models.SelectedClass
	var err error
	if email := c.Query("sEmail"); email != "" {
		sels, err = h.Selections.ListSelectionsByStudent(c.Request.Context(), email)
	} else {
		sels, err = h.Selections.ListSelections(c.Request.Context())
	}
	if err != nil {
		slog.Error("Failed to list selections", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not fetch selections"})
		return
	}
	if sels == nil {
		sels = make([]models.SelectedClass, 0)
	}
	c.JSON(http.StatusOK, sels)
}

// Get handles GET /selectedClasses/:id.
func (h *SelectionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sel, err := h.Selections.FindSelectionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "selection not found"})
			return
		}
		slog.Error("Failed to fetch selection", "error", err, "selectionID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not fetch selection"})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// Cancel handles DELETE /selectedClasses/:id. Cancellation is terminal
// for the pair; selecting again starts over.
func (h *SelectionHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Coordinator.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, enrollment.ErrSelectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "selection not found"})
			return
		}
		slog.Error("Failed to cancel selection", "error", err, "selectionID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not cancel selection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
