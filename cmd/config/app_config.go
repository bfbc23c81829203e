package config

import (
	"Meal-Prep-Backend/internal/api/handlers"
	"Meal-Prep-Backend/internal/api/routes"
	"Meal-Prep-Backend/internal/middleware"
	"Meal-Prep-Backend/internal/utils"
	"Meal-Prep-Backend/internal/utils/storage"
	"Meal-Prep-Backend/pkg/customer"
	"Meal-Prep-Backend/pkg/ingredient"
	"Meal-Prep-Backend/pkg/jwt"
	"Meal-Prep-Backend/pkg/location"
	"Meal-Prep-Backend/pkg/menu"
	"Meal-Prep-Backend/pkg/order"
	"Meal-Prep-Backend/pkg/taxonomy"
	"Meal-Prep-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func newRedisClient() *redis.Client {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
	})
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	taxonomyCache := taxonomy.NewTaxonomyCache(newRedisClient())

	// Repository
	taxonomyRepository := taxonomy.NewTaxonomyRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	locationRepository := location.NewLocationRepository(db)
	customerRepository := customer.NewCustomerRepository(db)
	userRepository := user.NewUserRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	taxonomyService := taxonomy.NewTaxonomyService(taxonomyRepository, taxonomyCache)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, taxonomyRepository)
	menuService := menu.NewMenuService(menuRepository, taxonomyRepository, ingredientRepository, locationRepository, s3)
	locationService := location.NewLocationService(locationRepository)
	customerService := customer.NewCustomerService(customerRepository, locationRepository)
	userService := user.NewUserService(userRepository, locationRepository, jwtService)
	orderService := order.NewOrderService(orderRepository, customerRepository, locationRepository)

	// Handler
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	customerHandler := handlers.NewCustomerHandler(customerService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		TaxonomyHandler:   taxonomyHandler,
		IngredientHandler: ingredientHandler,
		MenuHandler:       menuHandler,
		LocationHandler:   locationHandler,
		CustomerHandler:   customerHandler,
		UserHandler:       userHandler,
		OrderHandler:      orderHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
