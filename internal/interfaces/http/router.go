package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/istore-api/internal/application/auth"
	"github.com/jhoicas/istore-api/internal/application/usecase"
	"github.com/jhoicas/istore-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	StoreUC     *usecase.StoreUseCase
	InventoryUC *usecase.InventoryUseCase
	WhitelistUC *usecase.WhitelistUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; los permisos finos los decide el caso de uso)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Delete("/:id", storeHandler.Delete)
	stores.Post("/:id/employees", storeHandler.AddEmployee)
	stores.Get("/:id/employees", storeHandler.Employees)
	stores.Delete("/:id/employees/:userId", storeHandler.RemoveEmployee)
	stores.Get("/:id/items", inventoryHandler.ItemsByStore)

	// Items (protegido)
	items := protected.Group("/items")
	items.Post("/", inventoryHandler.CreateItem)
	items.Get("/:id", inventoryHandler.GetItem)
	items.Put("/:id", inventoryHandler.UpdateItem)
	items.Delete("/:id", inventoryHandler.DeleteItem)
	items.Post("/:id/increase", inventoryHandler.IncreaseStock)
	items.Post("/:id/decrease", inventoryHandler.DecreaseStock)

	// Whitelist (protegido + solo admin a nivel de ruta; el caso de uso
	// vuelve a verificar por si se invoca desde otro transporte)
	whitelist := protected.Group("/whitelist", RequireRole(entity.RoleAdmin))
	whitelistHandler := NewWhitelistHandler(deps.WhitelistUC)
	whitelist.Get("/", whitelistHandler.List)
	whitelist.Post("/", whitelistHandler.Add)
	whitelist.Delete("/:id", whitelistHandler.Remove)
}
