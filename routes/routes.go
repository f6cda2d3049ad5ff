package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/configs"
	"github.com/maojude27/FInal-project-itmajor/controllers"
	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/middlewares"
	"github.com/maojude27/FInal-project-itmajor/repository"
	"github.com/maojude27/FInal-project-itmajor/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log zerolog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, log)
	catalogSvc := services.NewCatalogService(catalogRepo, reviewRepo, log)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, notifRepo, cfg.ShippingFee, log)
	reviewSvc := services.NewReviewService(reviewRepo, catalogRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	profileCtrl := controllers.NewProfileController(authSvc, orderSvc, notifRepo, cfg.UploadDir)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	adminCtrl := controllers.NewAdminController(db, catalogSvc, orderSvc, cfg.UploadDir)

	// Public pages
	r.GET("/", catalogCtrl.Home)
	r.GET("/about", catalogCtrl.About)
	r.GET("/product/:id", catalogCtrl.ProductDetail)

	// Auth (public)
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.POST("/admin-register", authCtrl.AdminRegister)
	r.POST("/admin-login", authCtrl.AdminLogin)
	r.GET("/logout", authCtrl.Logout)

	// Customer (any logged-in user)
	user := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		user.GET("/dashboard", profileCtrl.Dashboard)
		user.GET("/profile", profileCtrl.Get)
		user.POST("/profile", profileCtrl.Update)
		user.GET("/notifications", profileCtrl.Notifications)

		user.POST("/add_to_cart", cartCtrl.Add)
		user.GET("/cart", cartCtrl.Get)
		user.GET("/orders", cartCtrl.Get) // legacy alias of /cart
		user.GET("/cart/update_quantity/:id/:op", cartCtrl.UpdateQuantity)
		user.GET("/cart/remove/:id", cartCtrl.Remove)

		user.GET("/order/:id", orderCtrl.Detail)

		user.GET("/checkout", orderCtrl.Checkout)
		user.POST("/checkout", orderCtrl.PlaceOrder)
		user.GET("/process_checkout", orderCtrl.PlaceOrder)
		user.POST("/place_order", orderCtrl.PlaceOrder)

		user.POST("/leave_review", reviewCtrl.Leave)
		user.POST("/product/:id", reviewCtrl.LeaveForProduct)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/overview", adminCtrl.Overview)
		admin.GET("/manage", adminCtrl.Manage)
		admin.GET("/products", adminCtrl.Products)

		admin.GET("/add_product", adminCtrl.AddProductForm)
		admin.POST("/add_product", adminCtrl.AddProduct)
		admin.GET("/edit_product/:id", adminCtrl.EditProductForm)
		admin.POST("/edit_product/:id", adminCtrl.EditProduct)
		admin.GET("/delete_product/:id", adminCtrl.DeleteProduct)

		admin.POST("/add_category", adminCtrl.AddCategory)
		admin.POST("/add_restaurant", adminCtrl.AddRestaurant)

		admin.POST("/update_order_status/:id", adminCtrl.UpdateOrderStatus)
	}

	// Schema creation stays reachable but never unauthenticated.
	r.GET("/initdb", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin), adminCtrl.InitDB)
}
