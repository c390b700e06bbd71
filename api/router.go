package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"api_pos/internal/catalog"
	"api_pos/internal/config"
	"api_pos/internal/reports"
	"api_pos/internal/sales"
	"api_pos/internal/users"
)

// InitRoutes wires repositories, services and handlers against the given
// database and registers every endpoint on the Gin engine.
func InitRoutes(e *gin.Engine, db *gorm.DB, cfg config.Config) {
	logger, _ := zap.NewProduction()
	InitRoutesWithLogger(e, db, cfg, logger)
}

// InitRoutesWithLogger is InitRoutes with an injected logger, used by tests.
func InitRoutesWithLogger(e *gin.Engine, db *gorm.DB, cfg config.Config, logger *zap.Logger) {
	// Inicialización de servicios
	userService := users.NewService(
		users.NewRepository(db),
		users.NewPasswordHasher(cfg.BcryptCost),
		users.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		logger,
	)
	catalogService := catalog.NewService(catalog.NewRepository(db), logger)
	salesService := sales.NewService(sales.NewRepository(db), logger)
	reportService := reports.NewService(salesService, logger)

	authHandler := newAuthHandler(userService, logger)
	productHandler := newProductHandler(catalogService, logger)
	salesHandler := newSalesHandler(salesService, logger)
	reportHandler := newReportHandler(reportService, logger)

	e.Use(requestID(), requestLogger(logger))

	e.POST("/auth/login", authHandler.handleLogin)

	e.GET("/products", productHandler.handleList)

	authed := e.Group("/", authRequired(userService))
	authed.POST("/products", productHandler.handleCreate)
	authed.PUT("/products/:id", productHandler.handleUpdate)
	authed.DELETE("/products/:id", productHandler.handleDelete)
	authed.POST("/sales", salesHandler.handleCreateSale)
	authed.GET("/sales", salesHandler.handleListSales)
	authed.GET("/reports/sales", reportHandler.handleSalesReport)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
