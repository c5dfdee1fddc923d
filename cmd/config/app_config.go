package config

import (
	"WebFood-API/internal/api/handlers"
	"WebFood-API/internal/api/routes"
	"WebFood-API/internal/middleware"
	"WebFood-API/internal/utils"
	"WebFood-API/internal/utils/mailing"
	"WebFood-API/internal/utils/storage"
	"WebFood-API/pkg/cart"
	"WebFood-API/pkg/category"
	"WebFood-API/pkg/food"
	"WebFood-API/pkg/jwt"
	"WebFood-API/pkg/order"
	"WebFood-API/pkg/payment"
	"WebFood-API/pkg/promotion"
	"WebFood-API/pkg/user"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewApp wires every component. The returned cleanup closes the log file and
// any broker connections.
func NewApp(db *gorm.DB) (*fiber.App, func(), error) {
	utils.InitValidator()
	decimal.MarshalJSONWithoutQuotes = true

	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	var closers []io.Closer

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, file)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(io.MultiWriter(os.Stdout, file))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	rateLimit := utils.GetConfigInt("RATE_LIMIT_MAX")
	if rateLimit <= 0 {
		rateLimit = 10
	}
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimit,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	var resetCodes user.ResetCodeStore
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: utils.GetConfig("REDIS_PASSWORD"),
			DB:       utils.GetConfigInt("REDIS_DB"),
		})
		closers = append(closers, client)
		resetCodes = user.NewRedisResetCodeStore(client)
		logrus.WithField("addr", addr).Info("reset codes stored in redis")
	} else {
		resetCodes = user.NewMemoryResetCodeStore()
	}

	var publisher order.OrderEventPublisher
	if brokers := utils.GetConfig("KAFKA_BROKERS"); brokers != "" {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        utils.GetConfig("KAFKA_ORDER_TOPIC"),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		}
		kafkaPublisher := order.NewKafkaOrderPublisher(writer)
		// Closed in reverse, so pending events drain before the writer shuts.
		closers = append(closers, writer, kafkaPublisher)
		publisher = kafkaPublisher
		logrus.WithField("brokers", brokers).Info("order events published to kafka")
	} else {
		publisher = order.NewNopOrderPublisher()
	}

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}
	var snapClient snap.Client
	snapClient.New(utils.GetConfig("SERVER_KEY"), env)

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	promotionRepository := promotion.NewPromotionRepository(db)
	orderRepository := order.NewOrderRepository(db)
	cartRepository := cart.NewCartRepository(db)

	// Service
	jwtService, err := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	if err != nil {
		return nil, nil, err
	}
	userService := user.NewUserService(userRepository, jwtService, resetCodes, mailer)
	foodService := food.NewFoodService(foodRepository, s3)
	categoryService := category.NewCategoryService(categoryRepository)
	promotionService := promotion.NewPromotionService(promotionRepository)
	orderService := order.NewOrderService(orderRepository, publisher, utils.GetConfig("APP_URL"))
	cartService := cart.NewCartService(cartRepository)
	paymentService := payment.NewPaymentService(orderRepository, &snapClient, payment.Config{
		VnPayURL: utils.GetConfig("VNPAY_URL"),
		MomoURL:  utils.GetConfig("MOMO_URL"),
	})

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	promotionHandler := handlers.NewPromotionHandler(promotionService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		CategoryHandler:  categoryHandler,
		PromotionHandler: promotionHandler,
		OrderHandler:     orderHandler,
		CartHandler:      cartHandler,
		PaymentHandler:   paymentHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				logrus.WithError(err).Warn("failed to close resource")
			}
		}
	}
	return app, cleanup, nil
}
