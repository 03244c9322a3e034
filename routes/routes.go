package routes

import (
	"github.com/GermanChai/germanchai/configs"
	"github.com/GermanChai/germanchai/controllers"
	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/middlewares"
	"github.com/GermanChai/germanchai/pkg/events"
	"github.com/GermanChai/germanchai/repository"
	"github.com/GermanChai/germanchai/services"
	"github.com/GermanChai/germanchai/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartStore := repository.NewRedisCartStore(rdb, cfg.CartTTL)

	// Event publisher: kafka when a broker is configured, no-op otherwise
	var pub events.Publisher = events.NopPublisher{}
	if cfg.KafkaBroker != "" {
		pub = events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
	}

	// Live order-status push
	hub := ws.NewOrderHub()
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cartStore, cfg.JWTSecret, cfg.JWTTTL)
	profileSvc := services.NewProfileService(profileRepo)
	menuSvc := services.NewMenuService(menuRepo, cfg.BaseURL)
	cartSvc := services.NewCartService(cartStore, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, orderRepo, menuRepo, profileRepo, cartStore, pub, hub)
	orderSvc := services.NewOrderService(db, orderRepo, pub, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, services.QRGenerator{BaseURL: cfg.BaseURL})
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Menu (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/menu/:id/image", menuCtrl.Image)
	r.GET("/menu/:id/qr", menuCtrl.QRCode)

	// Cart
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Checkout
	checkout := r.Group("/checkout", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		checkout.POST("", checkoutCtrl.Checkout)
		checkout.GET("/slots", checkoutCtrl.Slots)
	}

	// Orders (owner)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
	}

	// Profile + addresses
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("", profileCtrl.Get)
		profile.PUT("", profileCtrl.Update)
		profile.GET("/addresses", profileCtrl.ListAddresses)
		profile.POST("/addresses", profileCtrl.AddAddress)
		profile.PUT("/addresses/:id", profileCtrl.UpdateAddress)
		profile.DELETE("/addresses/:id", profileCtrl.DeleteAddress)
	}

	// Admin (admin role only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)
		admin.PATCH("/menu/:id/availability", adminCtrl.SetAvailability)
		admin.POST("/menu/:id/image", adminCtrl.UploadImage)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.SetOrderStatus)
	}

	// Live order updates
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
