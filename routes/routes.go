package routes

import (
	"log"

	"gettrendy/config"
	"gettrendy/controllers"
	"gettrendy/libs"
	"gettrendy/middleware"
	"gettrendy/models"
	"gettrendy/repositories"
	"gettrendy/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartRepo := repositories.NewCartRepository()
	checkoutRepo := repositories.NewCheckoutRepository()

	var mailer services.Mailer
	emailService, err := models.NewEmailService()
	if err != nil {
		log.Printf("Email disabled: %v", err)
	} else {
		mailer = emailService
	}

	var gateway services.PaymentGateway
	razorpay, err := libs.NewRazorpayClientFromConfig()
	if err != nil {
		log.Printf("Razorpay disabled: %v", err)
	} else {
		gateway = razorpay
	}

	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(cartRepo, checkoutRepo, gateway, mailer, config.AppConfig.AdminEmail)

	authCtrl := &controllers.AuthController{}
	productCtrl := &controllers.ProductController{}
	categoryCtrl := &controllers.CategoryController{}
	reviewCtrl := &controllers.ReviewController{}
	contactCtrl := &controllers.ContactController{}
	cartCtrl := controllers.NewCartController(cartService)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService, checkoutRepo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), authCtrl.GetAllUsers)
		auth.GET("/:id", middleware.AuthMiddleware(), authCtrl.GetUserByID)
		auth.PUT("/:id", middleware.AuthMiddleware(), authCtrl.UpdateUser)
		auth.POST("/delete/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), authCtrl.DeleteUser)
	}

	products := api.Group("/products")
	{
		products.GET("", productCtrl.GetAllProducts)
		products.GET("/:id", productCtrl.GetProductByID)
		products.GET("/category/:categoryId", productCtrl.GetProductsByCategory)
		products.POST("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), productCtrl.CreateProduct)
		products.PUT("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), productCtrl.UpdateProduct)
		products.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), productCtrl.DeleteProduct)
	}

	category := api.Group("/category")
	{
		category.GET("", categoryCtrl.GetAllCategories)
		category.GET("/:id", categoryCtrl.GetCategoryByID)
		category.POST("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), categoryCtrl.CreateCategory)
		category.PUT("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), categoryCtrl.UpdateCategory)
		category.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), categoryCtrl.DeleteCategory)
	}

	cart := api.Group("/cart")
	{
		cart.POST("/add", cartCtrl.AddToCart)
		cart.GET("/:userId", cartCtrl.GetCartItems)
		cart.DELETE("/:userId/:productId", cartCtrl.RemoveCartItem)
		cart.PUT("/:userId/:productId", cartCtrl.UpdateCartItem)
	}

	checkout := api.Group("/checkout")
	{
		checkout.POST("", checkoutCtrl.CreateCheckout)
		checkout.POST("/payment-success", checkoutCtrl.PaymentSuccess)
		checkout.GET("/:userId", checkoutCtrl.GetUserCheckouts)
		checkout.GET("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), checkoutCtrl.GetAllCheckouts)
		checkout.PUT("/:checkoutId", middleware.AuthMiddleware(), middleware.AdminMiddleware(), checkoutCtrl.UpdateCheckoutStatus)
		checkout.DELETE("/:checkoutId", middleware.AuthMiddleware(), middleware.AdminMiddleware(), checkoutCtrl.DeleteCheckout)
	}

	review := api.Group("/review")
	{
		review.POST("/add", reviewCtrl.CreateReview)
		review.GET("/reviews/:productId", reviewCtrl.GetProductReviews)
		review.GET("/getAllReview", middleware.AuthMiddleware(), middleware.AdminMiddleware(), reviewCtrl.GetAllReviews)
		review.PUT("/review/:id", reviewCtrl.UpdateReview)
		review.DELETE("/review/:id", reviewCtrl.DeleteReview)
	}

	contact := api.Group("/contact")
	{
		contact.POST("/add", contactCtrl.CreateContact)
		contact.GET("/contacts", middleware.AuthMiddleware(), middleware.AdminMiddleware(), contactCtrl.GetAllContacts)
		contact.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), contactCtrl.DeleteContact)
	}

	router.Static("/uploads", config.AppConfig.UploadDir)
}
