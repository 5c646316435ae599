package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookstore/internal/customer"
)

// customerHandler holds the customer service and implements HTTP handlers for directory operations.
type customerHandler struct {
	customerService *customer.Service
	logger          *zap.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService *customer.Service, logger *zap.Logger) *customerHandler {
	return &customerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// handleAddCustomer handles the POST /customers endpoint.
func (h *customerHandler) handleAddCustomer(ctx *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	c, err := h.customerService.AddCustomer(req.Name, req.Email, req.Phone)
	if err != nil {
		h.logger.Error("failed to add customer", zap.Error(err), zap.String("email", req.Email))
		switch {
		case errors.Is(err, customer.ErrAlreadyExists):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, customer.ErrMissingFields),
			errors.Is(err, customer.ErrInvalidEmail),
			errors.Is(err, customer.ErrInvalidPhone):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add customer"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, c)
}

// handleListCustomers handles the GET /customers endpoint, with an
// optional ?name= filter.
func (h *customerHandler) handleListCustomers(ctx *gin.Context) {
	var (
		customers []*customer.Customer
		err       error
	)
	if name := ctx.Query("name"); name != "" {
		customers, err = h.customerService.FindByName(name)
	} else {
		customers, err = h.customerService.ListCustomers()
	}
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": customers})
}

// handleUpdateCustomer handles the PATCH /customers/:email endpoint.
func (h *customerHandler) handleUpdateCustomer(ctx *gin.Context) {
	email := ctx.Param("email")

	var req struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.customerService.UpdateDetails(email, req.Email, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		case errors.Is(err, customer.ErrAlreadyExists):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, customer.ErrInvalidEmail), errors.Is(err, customer.ErrInvalidPhone):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update customer", zap.Error(err), zap.String("email", email))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer"})
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// handleRemoveCustomer handles the DELETE /customers/:email endpoint.
func (h *customerHandler) handleRemoveCustomer(ctx *gin.Context) {
	email := ctx.Param("email")

	if err := h.customerService.RemoveCustomer(email); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.logger.Error("failed to remove customer", zap.Error(err), zap.String("email", email))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove customer"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
