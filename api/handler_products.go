package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"api_pos/internal/catalog"
)

type productHandler struct {
	catalogService *catalog.Service
	logger         *zap.Logger
}

func newProductHandler(catalogService *catalog.Service, logger *zap.Logger) *productHandler {
	return &productHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

type productRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// handleList handles GET /products.
func (h *productHandler) handleList(ctx *gin.Context) {
	products, err := h.catalogService.List()
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// handleCreate handles POST /products.
func (h *productHandler) handleCreate(ctx *gin.Context) {
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind product request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	product, err := h.catalogService.Create(req.Code, req.Name, req.Price, req.Quantity)
	if err != nil {
		h.writeError(ctx, err, "failed to create product")
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// handleUpdate handles PUT /products/:id, replacing all four fields.
func (h *productHandler) handleUpdate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind product request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	product, err := h.catalogService.Update(id, req.Code, req.Name, req.Price, req.Quantity)
	if err != nil {
		h.writeError(ctx, err, "failed to update product")
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// handleDelete handles DELETE /products/:id.
func (h *productHandler) handleDelete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		h.writeError(ctx, err, "failed to delete product")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *productHandler) writeError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, catalog.ErrInvalidProduct):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	default:
		h.logger.Error(fallback, zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return uint(id), true
}
