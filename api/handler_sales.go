package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_pos/internal/sales"
)

type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

func newSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateSale handles POST /sales. The response distinguishes
// validation problems, unknown references and insufficient stock from
// generic storage failures.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req sales.CreateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind sale request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if claims, ok := currentClaims(ctx); ok {
		h.logger.Info("sale requested",
			zap.String("request_id", ctx.GetString("request_id")),
			zap.Uint("authenticated_user", claims.UserID),
			zap.Uint("seller_id", req.SellerID),
		)
	}

	sale, err := h.salesService.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, sales.ErrProductNotFound), errors.Is(err, sales.ErrSellerNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, sales.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record sale"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// handleListSales handles GET /sales, newest first.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	result, err := h.salesService.List()
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
