package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookstore/internal/book"
	"bookstore/internal/customer"
	"bookstore/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateSale handles the POST /sales endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req struct {
		CustomerEmail string `json:"customer_email" binding:"required"`
		BookTitle     string `json:"book_title" binding:"required"`
		Quantity      int    `json:"quantity"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	transaction, err := h.salesService.CreateSale(req.CustomerEmail, req.BookTitle, req.Quantity)
	if err != nil {
		h.logger.Error("failed to create sale",
			zap.Error(err),
			zap.String("customer_email", req.CustomerEmail),
			zap.String("book_title", req.BookTitle),
			zap.Int("quantity", req.Quantity),
		)

		var stockErr *book.InsufficientStockError
		switch {
		case errors.Is(err, customer.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		case errors.Is(err, book.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		case errors.Is(err, sales.ErrInvalidQuantity):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &stockErr):
			ctx.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Error: Only %d copies available", stockErr.Available)})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sale"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, transaction)
}

// handleListTransactions handles the GET /sales endpoint.
func (h *salesHandler) handleListTransactions(ctx *gin.Context) {
	transactions, err := h.salesService.ListTransactions()
	if err != nil {
		h.logger.Error("failed to list transactions", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// handleSummary handles the GET /sales/summary endpoint.
func (h *salesHandler) handleSummary(ctx *gin.Context) {
	summary, err := h.salesService.GetSummary()
	if err != nil {
		h.logger.Error("failed to build sales summary", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sales summary"})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
