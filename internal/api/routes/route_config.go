package routes

import (
	"Meal-Prep-Backend/internal/api/handlers"
	"Meal-Prep-Backend/internal/middleware"
	"Meal-Prep-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	TaxonomyHandler   handlers.TaxonomyHandler
	IngredientHandler handlers.IngredientHandler
	MenuHandler       handlers.MenuHandler
	LocationHandler   handlers.LocationHandler
	CustomerHandler   handlers.CustomerHandler
	UserHandler       handlers.UserHandler
	OrderHandler      handlers.OrderHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Users()
	c.Settings()
	c.Ingredients()
	c.Menu()
	c.Locations()
	c.Customers()
	c.Orders()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/login", c.UserHandler.Login)
		users.Post("/setup-password", c.UserHandler.SetupPassword)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		users.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetUsers)
		users.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.CreateUser)
		users.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		users.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteUser)
	}
}

// Settings covers the four-level food taxonomy behind the settings screens.
func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings", c.Middleware.AuthMiddleware(c.JWTService))

	settings.Get("/selection-options", c.TaxonomyHandler.GetSelectionOptions)

	categories := settings.Group("/categories")
	{
		categories.Get("", c.TaxonomyHandler.GetCategories)
		categories.Post("", c.TaxonomyHandler.CreateCategory)
		categories.Patch("/:id", c.TaxonomyHandler.UpdateCategory)
		categories.Delete("/:id", c.TaxonomyHandler.DeleteCategory)
	}

	types := settings.Group("/types")
	{
		types.Get("", c.TaxonomyHandler.GetTypes)
		types.Post("", c.TaxonomyHandler.CreateType)
		types.Patch("/:id", c.TaxonomyHandler.UpdateType)
		types.Delete("/:id", c.TaxonomyHandler.DeleteType)
	}

	specifications := settings.Group("/specifications")
	{
		specifications.Get("", c.TaxonomyHandler.GetSpecifications)
		specifications.Post("", c.TaxonomyHandler.CreateSpecification)
		specifications.Patch("/:id", c.TaxonomyHandler.UpdateSpecification)
		specifications.Delete("/:id", c.TaxonomyHandler.DeleteSpecification)
	}

	cookTypes := settings.Group("/cook-types")
	{
		cookTypes.Get("", c.TaxonomyHandler.GetCookTypes)
		cookTypes.Post("", c.TaxonomyHandler.CreateCookType)
		cookTypes.Patch("/:id", c.TaxonomyHandler.UpdateCookType)
		cookTypes.Delete("/:id", c.TaxonomyHandler.DeleteCookType)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/by-category", c.IngredientHandler.GetIngredientsByCategory)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetails)
		ingredients.Post("", c.IngredientHandler.CreateIngredient)
		ingredients.Patch("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu", c.Middleware.AuthMiddleware(c.JWTService))
	{
		menu.Get("", c.MenuHandler.GetMenuItems)
		menu.Post("", c.MenuHandler.CreateMenuItem)
		menu.Post("/draft", c.MenuHandler.CreateDraftMenuItem)
		menu.Get("/:id", c.MenuHandler.GetMenuItemDetails)
		menu.Patch("/:id", c.MenuHandler.UpdateMenuItem)
		menu.Patch("/:id/toggle-status", c.MenuHandler.ToggleMenuItemStatus)
		menu.Delete("/:id/photos/:position", c.MenuHandler.RemoveMenuItemPhoto)
		menu.Delete("/:id", c.MenuHandler.DeleteMenuItem)
	}
}

func (c *Config) Locations() {
	locations := c.App.Group("/api/v1/locations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		locations.Get("", c.LocationHandler.GetLocations)
		locations.Get("/:id", c.LocationHandler.GetLocationDetails)
		locations.Post("", c.LocationHandler.CreateLocation)
		locations.Patch("/:id", c.LocationHandler.UpdateLocation)
		locations.Delete("/:id", c.LocationHandler.DeleteLocation)
	}
}

func (c *Config) Customers() {
	customers := c.App.Group("/api/v1/customers", c.Middleware.AuthMiddleware(c.JWTService))
	{
		customers.Get("", c.CustomerHandler.GetCustomers)
		customers.Get("/:id", c.CustomerHandler.GetCustomerDetails)
		customers.Post("", c.CustomerHandler.CreateCustomer)
		customers.Patch("/:id", c.CustomerHandler.UpdateCustomer)
		customers.Delete("/:id", c.CustomerHandler.DeleteCustomer)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Get("", c.OrderHandler.GetOrders)
		orders.Get("/stats", c.OrderHandler.GetOrderStats)
		orders.Get("/:id", c.OrderHandler.GetOrderDetails)
		orders.Post("", c.OrderHandler.CreateOrder)
		orders.Patch("/:id/status", c.OrderHandler.UpdateOrderStatus)
		orders.Patch("/:id", c.OrderHandler.UpdateOrder)
		orders.Delete("/:id", c.OrderHandler.DeleteOrder)
	}
}
