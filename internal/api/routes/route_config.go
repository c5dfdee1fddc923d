package routes

import (
	"WebFood-API/domain"
	"WebFood-API/internal/api/handlers"
	"WebFood-API/internal/middleware"
	"WebFood-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	CategoryHandler  handlers.CategoryHandler
	PromotionHandler handlers.PromotionHandler
	OrderHandler     handlers.OrderHandler
	CartHandler      handlers.CartHandler
	PaymentHandler   handlers.PaymentHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	api := c.App.Group("/api")
	c.GuestRoute(api)
	c.User(api)
	c.Food(api)
	c.Category(api)
	c.Promotion(api)
	c.Order(api)
	c.Cart(api)
	c.Payment(api)
}

func (c *Config) GuestRoute(api fiber.Router) {
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}

func (c *Config) User(api fiber.Router) {
	user := api.Group("/user")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/forgot-password", c.UserHandler.ForgotPassword)
		user.Post("/verify-reset-code", c.UserHandler.VerifyResetCode)
	}
	// admin routes
	{
		user.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAllow(domain.RoleAdmin), c.UserHandler.GetUsers)
		user.Get("/:id", c.UserHandler.GetUserByID)
		user.Post("", c.UserHandler.CreateUser)
		user.Put("/:id", c.UserHandler.UpdateUser)
		user.Delete("/:id", c.UserHandler.DeleteUser)
	}
}

func (c *Config) Food(api fiber.Router) {
	food := api.Group("/food")
	food.Get("", c.FoodHandler.GetFoods)
	food.Get("/:id", c.FoodHandler.GetFoodByID)
	food.Post("", c.FoodHandler.AddFood)
	food.Put("/:id", c.FoodHandler.UpdateFood)
	food.Delete("/:id", c.FoodHandler.DeleteFood)
	food.Post("/:id/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Category(api fiber.Router) {
	category := api.Group("/category")
	category.Get("", c.CategoryHandler.GetCategories)
	category.Get("/:id", c.CategoryHandler.GetCategoryByID)
	category.Post("", c.CategoryHandler.AddCategory)
	category.Put("/:id", c.CategoryHandler.UpdateCategory)
	category.Delete("/:id", c.CategoryHandler.DeleteCategory)
}

func (c *Config) Promotion(api fiber.Router) {
	promotion := api.Group("/promotion")
	promotion.Get("", c.PromotionHandler.GetPromotions)
	promotion.Get("/active", c.PromotionHandler.GetActivePromotions)
	promotion.Get("/validate/:code", c.PromotionHandler.ValidateCode)
	promotion.Get("/:id", c.PromotionHandler.GetPromotionByID)
	promotion.Post("", c.PromotionHandler.CreatePromotion)
	promotion.Put("/:id", c.PromotionHandler.UpdatePromotion)
	promotion.Delete("/:id", c.PromotionHandler.DeletePromotion)
}

func (c *Config) Order(api fiber.Router) {
	order := api.Group("/order")
	// static segments first so they are not captured by /:id
	order.Get("", c.OrderHandler.GetOrders)
	order.Get("/status-options", c.OrderHandler.GetStatusOptions)
	order.Get("/user/:userId", c.OrderHandler.GetOrdersByUser)
	order.Get("/status/:status", c.OrderHandler.GetOrdersByStatus)
	order.Get("/:id/qrcode", c.OrderHandler.GetOrderQRCode)
	order.Get("/:id", c.OrderHandler.GetOrderByID)
	order.Post("", c.OrderHandler.CreateOrder)
	order.Put("/:id/status", c.OrderHandler.UpdateOrderStatus)
	order.Put("/:id", c.OrderHandler.PatchOrder)
	order.Delete("/:id", c.OrderHandler.DeleteOrder)
}

func (c *Config) Cart(api fiber.Router) {
	cart := api.Group("/cart", c.Middleware.AuthMiddleware(c.JWTService))
	cart.Get("", c.CartHandler.GetCart)
	cart.Post("", c.CartHandler.AddItem)
	cart.Delete("", c.CartHandler.ClearCart)
	cart.Put("/:id", c.CartHandler.UpdateItem)
	cart.Delete("/:id", c.CartHandler.RemoveItem)
}

func (c *Config) Payment(api fiber.Router) {
	payment := api.Group("/payment")
	payment.Post("/vnpay", c.PaymentHandler.CreateVnPayPayment)
	payment.Post("/momo", c.PaymentHandler.CreateMomoPayment)
	payment.Post("/midtrans", c.PaymentHandler.CreateMidtransPayment)
}
