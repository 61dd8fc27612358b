package routes

import (
	"jewelry-shop/controllers"
	"jewelry-shop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers bundles the handler set wired in main.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Product    *controllers.ProductController
	Collection *controllers.CollectionController
	Order      *controllers.OrderController
	Ticket     *controllers.TicketController
	Settings   *controllers.SettingsController
	Dashboard  *controllers.DashboardController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrl.Auth.Register)
	router.POST("/auth/login", ctrl.Auth.Login)
	router.GET("/collections", ctrl.Collection.GetAllCollections)
	router.GET("/collections/:id", ctrl.Collection.GetCollectionByID)
	router.GET("/products", ctrl.Product.GetAllProducts)
	router.GET("/products/:id", ctrl.Product.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/profile", ctrl.Auth.GetProfile)
		auth.PATCH("/profile", ctrl.Auth.UpdateProfile)
		auth.PATCH("/profile/password", ctrl.Auth.ChangePassword)

		auth.GET("/tickets", ctrl.Ticket.GetAllTickets)
		auth.GET("/tickets/:id", ctrl.Ticket.GetTicketByID)
		auth.POST("/tickets", ctrl.Ticket.CreateTicket)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", ctrl.Dashboard.GetDashboard)

		admin.GET("/users", ctrl.User.GetAllUsers)
		admin.GET("/users/:id", ctrl.User.GetUserByID)
		admin.POST("/users", ctrl.User.CreateUser)
		admin.PATCH("/users/:id", ctrl.User.UpdateUser)
		admin.DELETE("/users/:id", ctrl.User.DeleteUser)
		admin.GET("/users/:id/addresses", ctrl.User.ListAddresses)
		admin.POST("/users/:id/addresses", ctrl.User.CreateAddress)

		admin.POST("/collections", ctrl.Collection.CreateCollection)
		admin.PATCH("/collections/:id", ctrl.Collection.UpdateCollection)
		admin.DELETE("/collections/:id", ctrl.Collection.DeleteCollection)

		admin.POST("/products", ctrl.Product.CreateProduct)
		admin.PATCH("/products/:id", ctrl.Product.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.Product.DeleteProduct)
		admin.POST("/products/:id/image", ctrl.Product.UploadProductImage)

		admin.GET("/orders", ctrl.Order.GetAllOrders)
		admin.GET("/orders/:id", ctrl.Order.GetOrderByID)
		admin.POST("/orders", ctrl.Order.CreateOrder)
		admin.PATCH("/orders/:id", ctrl.Order.UpdateOrder)
		admin.PATCH("/orders/:id/status", ctrl.Order.UpdateOrderStatus)

		admin.PATCH("/tickets/:id", ctrl.Ticket.UpdateTicket)
		admin.POST("/tickets/:id/replies", ctrl.Ticket.ReplyToTicket)

		admin.GET("/settings", ctrl.Settings.GetAllSettings)
		admin.GET("/settings/:key", ctrl.Settings.GetSetting)
		admin.PUT("/settings/:key", ctrl.Settings.UpsertSetting)
	}

	router.Static("/uploads", "./uploads")
}
