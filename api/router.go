package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookstore/internal/book"
	"bookstore/internal/customer"
	"bookstore/internal/sales"
)

// InitRoutes registers all bookstore endpoints on the given Gin engine.
// It initializes the storages, services, and handlers, then binds each
// HTTP method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine) {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	registerRoutes(e, logger)
}

// InitRoutesWithLogger performs the same wiring as InitRoutes with an
// injected logger, so tests can plug in zaptest.
func InitRoutesWithLogger(e *gin.Engine, logger *zap.Logger) {
	registerRoutes(e, logger)
}

func registerRoutes(e *gin.Engine, logger *zap.Logger) {
	bookStorage := book.NewLocalStorage()
	bookService := book.NewService(bookStorage, logger)
	bookHandler := NewBookHandler(bookService, logger)

	customerStorage := customer.NewLocalStorage()
	customerService := customer.NewService(customerStorage, logger)
	customerHandler := NewCustomerHandler(customerService, logger)

	salesStorage := sales.NewLocalStorage()
	salesService := sales.NewService(salesStorage, bookService, customerService, logger)
	salesHandler := NewSalesHandler(salesService, logger)

	e.POST("/books", bookHandler.handleAddBook)
	e.GET("/books", bookHandler.handleListBooks)
	e.GET("/books/search", bookHandler.handleSearchBooks)
	e.GET("/books/:title", bookHandler.handleGetBook)

	e.POST("/customers", customerHandler.handleAddCustomer)
	e.GET("/customers", customerHandler.handleListCustomers)
	e.PATCH("/customers/:email", customerHandler.handleUpdateCustomer)
	e.DELETE("/customers/:email", customerHandler.handleRemoveCustomer)

	e.POST("/sales", salesHandler.handleCreateSale)
	e.GET("/sales", salesHandler.handleListTransactions)
	e.GET("/sales/summary", salesHandler.handleSummary)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
