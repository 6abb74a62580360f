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

// PaymentHandler serves the payment phases: intent creation (phase 2),
// finalization (phase 3) and the ledger listing.
type PaymentHandler struct {
	Ledger      store.PaymentStore
	Coordinator *enrollment.Coordinator
}

// IntentInput is the payload for POST /create-payment-intent.
type IntentInput struct {
	Price float64 `json:"price" binding:"gte=0"`
}

// FinalizeInput is the payload for POST /payments. SelectionID is the
// selection being settled and doubles as the idempotency key.
type FinalizeInput struct {
	SelectionID   uint    `json:"selectionId" binding:"required"`
	ClassID       uint    `json:"classId" binding:"required"`
	ClassName     string  `json:"className"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	TransactionID string  `json:"transactionId"`
}

// CreateIntent handles POST /create-payment-intent. No durable state is
// produced; a zero price still gets a well-formed zero-amount intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input IntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	secret, err := h.Coordinator.CreateIntent(c.Request.Context(), input.Price)
	if err != nil {
		slog.Error("Failed to create payment intent", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// Finalize handles POST /payments. Safe to retry: resubmitting the same
// selection returns the already-recorded payment.
func (h *PaymentHandler) Finalize(c *gin.Context) {
	var input FinalizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	payment := models.Payment{
		StudentEmail:  c.GetString(middleware.CtxEmail),
		ClassID:       input.ClassID,
		ClassName:     input.ClassName,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
		SelectionID:   input.SelectionID,
	}

	settled, err := h.Coordinator.Finalize(c.Request.Context(), &payment)
	if err != nil {
		if errors.Is(err, enrollment.ErrSelectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "selection not found"})
			return
		}
		slog.Error("Failed to finalize payment", "error", err, "selectionID", input.SelectionID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not record payment"})
		return
	}
	c.JSON(http.StatusOK, settled)
}

// List handles GET /payments with an optional ?email= filter.
func (h *PaymentHandler) List(c *gin.Context) {
	var payments []models.Payment
	var err error
	if email := c.Query("email"); email != "" {
		payments, err = h.Ledger.ListPaymentsByEmail(c.Request.Context(), email)
	} else {
		payments, err = h.Ledger.ListPayments(c.Request.Context())
	}
	if err != nil {
		slog.Error("Failed to list payments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not fetch payments"})
		return
	}
	if payments == nil {
		payments = make([]models.Payment, 0)
	}
	c.JSON(http.StatusOK, payments)
}
