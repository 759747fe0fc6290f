package routes

import (
	"context"
	"fmt"

	_ "shiv_accounts/docs" // registers the swagger spec
	"shiv_accounts/internal/adapter/http/handlers"
	"shiv_accounts/internal/infrastructure/config"
	"shiv_accounts/internal/infrastructure/container"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the stores from cfg and serves the API until the listener fails.
func Run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.Server.Mode)

	c, err := container.New(ctx, cfg)
	if err != nil {
		return err
	}

	router := NewRouter(c)
	logrus.WithFields(logrus.Fields{"component": "server", "addr": cfg.Addr()}).Info("listening")
	if err := router.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the engine with every route registered.
func NewRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMasterRoutes(v1,
		handlers.NewContactHandler(c.Contacts),
		handlers.NewProductHandler(c.Products),
		handlers.NewTaxHandler(c.Taxes),
		handlers.NewAccountHandler(c.Accounts),
	)
	addTransactionRoutes(v1, handlers.NewPurchaseOrderHandler(c.PurchaseOrders))
	addReportRoutes(v1, handlers.NewReportHandler(c.Reports))

	router.NoRoute(handlers.NotFound)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(requestMetrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithFields(logrus.Fields{"component": "server", "path": c.Request.URL.Path}).
			Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
