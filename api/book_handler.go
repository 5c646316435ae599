package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bookstore/internal/book"
)

// bookHandler holds the book service and implements HTTP handlers for inventory operations.
type bookHandler struct {
	bookService *book.Service
	logger      *zap.Logger
}

// NewBookHandler creates a new book handler.
func NewBookHandler(bookService *book.Service, logger *zap.Logger) *bookHandler {
	return &bookHandler{
		bookService: bookService,
		logger:      logger,
	}
}

// handleAddBook handles the POST /books endpoint.
func (h *bookHandler) handleAddBook(ctx *gin.Context) {
	var req struct {
		Title    string          `json:"title" binding:"required"`
		Author   string          `json:"author" binding:"required"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	b, err := h.bookService.AddBook(req.Title, req.Author, req.Price, req.Quantity)
	if err != nil {
		h.logger.Error("failed to add book", zap.Error(err), zap.String("title", req.Title))
		switch {
		case errors.Is(err, book.ErrAlreadyExists):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, book.ErrMissingFields),
			errors.Is(err, book.ErrInvalidPrice),
			errors.Is(err, book.ErrNegativeQuantity):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add book"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, b)
}

// handleListBooks handles the GET /books endpoint, with optional
// sorting (?sort=title|price&order=desc) and price range filtering
// (?min_price=&max_price=).
func (h *bookHandler) handleListBooks(ctx *gin.Context) {
	minPrice := ctx.Query("min_price")
	maxPrice := ctx.Query("max_price")
	if minPrice != "" || maxPrice != "" {
		h.handleFilterByPrice(ctx, minPrice, maxPrice)
		return
	}

	desc := ctx.Query("order") == "desc"

	var (
		books []*book.Book
		err   error
	)
	switch ctx.Query("sort") {
	case "title":
		books, err = h.bookService.SortByTitle(desc)
	case "price":
		books, err = h.bookService.SortByPrice(desc)
	case "":
		books, err = h.bookService.ListBooks()
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort value"})
		return
	}
	if err != nil {
		h.logger.Error("failed to list books", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list books"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": books})
}

func (h *bookHandler) handleFilterByPrice(ctx *gin.Context, minPrice, maxPrice string) {
	min := decimal.Zero
	max := decimal.Zero

	var err error
	if minPrice != "" {
		if min, err = decimal.NewFromString(minPrice); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price value"})
			return
		}
	}
	if maxPrice != "" {
		if max, err = decimal.NewFromString(maxPrice); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price value"})
			return
		}
	}

	books, err := h.bookService.FilterByPrice(min, max)
	if err != nil {
		h.logger.Error("failed to filter books", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to filter books"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": books})
}

// handleSearchBooks handles the GET /books/search endpoint.
func (h *bookHandler) handleSearchBooks(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing search query"})
		return
	}

	books, err := h.bookService.SearchBooks(query)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no books found for '" + query + "'"})
			return
		}
		h.logger.Error("failed to search books", zap.Error(err), zap.String("query", query))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search books"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": books})
}

// handleGetBook handles the GET /books/:title endpoint.
func (h *bookHandler) handleGetBook(ctx *gin.Context) {
	title := ctx.Param("title")

	b, err := h.bookService.GetBook(title)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		h.logger.Error("failed to get book", zap.Error(err), zap.String("title", title))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get book"})
		return
	}

	ctx.JSON(http.StatusOK, b)
}
