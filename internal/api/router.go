package api

import (
	"time"

	"paystack-client/config"
	_ "paystack-client/docs"
	"paystack-client/internal/api/v1/payment"
	"paystack-client/internal/middleware"
	"paystack-client/internal/session"
	"paystack-client/internal/utils"
	"paystack-client/pkg/paystack"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func NewRouter(cfg *config.Config, client *paystack.Client, sessions session.Store, logger *zap.Logger) *gin.Engine {
	utils.UseJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	payment.RegisterRoutes(v1, payment.NewHandler(client, sessions, payment.Checkout{
		PublicKey:     cfg.PublicKey,
		MerchantEmail: cfg.MerchantEmail,
	}, logger))

	return router
}
