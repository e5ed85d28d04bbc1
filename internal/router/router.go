// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/config"
	"github.com/foodnetwork/cfn-backend/internal/handlers"
	"github.com/foodnetwork/cfn-backend/internal/middleware"
	"github.com/foodnetwork/cfn-backend/internal/services"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	stockService := services.NewStockService(db)
	orderService := services.NewOrderService(db)
	requestService := services.NewRequestService(db)
	newsService := services.NewNewsService(db)
	paymentService := services.NewPaymentService(db, cfg)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, stockService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)
	requestHandler := handlers.NewRequestHandler(requestService)
	newsHandler := handlers.NewNewsHandler(newsService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Product routes: public browse, admin-gated mutations on the same resource
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/catalog", productHandler.GetCatalog)
			products.GET("/:id", productHandler.GetProduct)

			adminOnly := products.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminOnly.POST("", productHandler.CreateProduct)
				adminOnly.POST("/upload-image", middleware.UploadRateLimit(), productHandler.UploadImage)
				adminOnly.PUT("/:id", productHandler.UpdateProduct)
				adminOnly.DELETE("/:id", productHandler.DeleteProduct)
				adminOnly.POST("/:id/stock", productHandler.AdjustStock)
				adminOnly.GET("/:id/movements", productHandler.GetMovements)
			}
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Product request routes
		requests := v1.Group("/requests")
		{
			requests.GET("", requestHandler.GetRequests)
			requests.GET("/:id", requestHandler.GetRequest)

			protected := requests.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", requestHandler.CreateRequest)
				protected.POST("/:id/support", requestHandler.SupportRequest)
				protected.DELETE("/:id/support", requestHandler.RemoveSupport)
			}

			adminOnly := requests.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminOnly.PATCH("/:id", requestHandler.UpdateRequest)
				adminOnly.DELETE("/:id", requestHandler.DeleteRequest)
			}
		}

		// News routes
		news := v1.Group("/news")
		{
			news.GET("", newsHandler.GetNews)

			adminOnly := news.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminOnly.GET("/all", newsHandler.GetAllNews)
				adminOnly.POST("", newsHandler.CreateNews)
				adminOnly.PUT("/:id", newsHandler.UpdateNews)
				adminOnly.DELETE("/:id", newsHandler.DeleteNews)
			}
		}

		// Payment routes
		payments := v1.Group("/payments")
		payments.Use(middleware.AuthRequired())
		{
			payments.POST("/intent", paymentHandler.CreatePaymentIntent)
			payments.POST("/confirm", paymentHandler.ConfirmPayment)
		}

		// Admin dashboard
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboard)
		}
	}

	return r
}
