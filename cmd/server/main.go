package main

import (
	"lanchonete/internal/config"
	"lanchonete/internal/database"
	"lanchonete/internal/events"
	"lanchonete/internal/handlers"
	"lanchonete/internal/repository"
	"lanchonete/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, cfg.StatementTimeoutMS)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize event broadcasting; fall back to log-only when Redis is down
	// so the store keeps taking orders.
	var notifier events.Notifier
	redisNotifier, err := events.NewRedisNotifier(cfg.RedisURL, log)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, events will only be logged")
		notifier = events.NewLogNotifier(log)
	} else {
		notifier = redisNotifier
		defer redisNotifier.Close()
	}

	// Initialize repositories
	txManager := repository.NewTransactionManager(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	neighborhoodRepo := repository.NewNeighborhoodRepository(db)
	couponRepo := repository.NewCouponRepository(db)

	// Initialize services
	orderService := services.NewOrderService(txManager, orderRepo, notifier, log)
	productService := services.NewProductService(productRepo, log)
	deliveryService := services.NewDeliveryService(neighborhoodRepo, log)
	couponService := services.NewCouponService(couponRepo, log)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	menuHandler := handlers.NewMenuHandler(productService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)
	couponHandler := handlers.NewCouponHandler(couponService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		// Customer area
		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/me", orderHandler.ListMine)
		api.GET("/orders/:id/status", orderHandler.Status)
		api.PATCH("/orders/:id/cancel", orderHandler.CancelMine)

		api.GET("/menu", menuHandler.List)
		api.GET("/menu/:id", menuHandler.Get)
		api.GET("/delivery", deliveryHandler.ListActive)
		api.GET("/coupons", couponHandler.ListPublic)

		// Payment gateway callback
		api.POST("/payments/webhook", orderHandler.PaymentWebhook)

		// Back office (admin authentication handled upstream)
		admin := api.Group("/admin")
		{
			admin.GET("/orders", orderHandler.ListDaily)
			admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
			admin.DELETE("/orders/:id", orderHandler.CancelByAdmin)

			admin.GET("/menu", menuHandler.ListAll)
			admin.POST("/menu", menuHandler.Create)
			admin.PUT("/menu/:id", menuHandler.Update)
			admin.DELETE("/menu/:id", menuHandler.Delete)
			admin.PATCH("/menu/:id/availability", menuHandler.SetAvailability)

			admin.GET("/delivery", deliveryHandler.ListAll)
			admin.POST("/delivery", deliveryHandler.Add)
			admin.PUT("/delivery/:id", deliveryHandler.Update)
			admin.DELETE("/delivery/:id", deliveryHandler.Delete)

			admin.GET("/coupons", couponHandler.ListAll)
			admin.POST("/coupons", couponHandler.Create)
			admin.DELETE("/coupons/:id", couponHandler.Delete)
		}
	}

	// Start server
	log.Infof("server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
