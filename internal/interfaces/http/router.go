package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProposalUC   *usecase.ProposalUseCase
	EventUC      *usecase.EventUseCase
	TaskUC       *usecase.TaskUseCase
	InventoryUC  *usecase.InventoryUseCase
	AccessSecret string
}

// Router registra las rutas de la API. El AccessGate corre antes que
// cualquier handler; las rutas de auth y health son públicas.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(AccessGate(deps.AccessSecret))

	api := app.Group("/api")

	// Auth (ciclo de vida de la sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.AccessSecret)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/logout", authHandler.Logout)
	authGroup.Post("/ack", authHandler.Ack)
	authGroup.Post("/check-token", authHandler.CheckToken)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/gen-token", authHandler.GenToken)

	// Users (HR; el gate exige ADMIN/EXECUTIVE por prefijo)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Proposals
	proposals := api.Group("/proposals")
	proposalHandler := NewProposalHandler(deps.ProposalUC)
	proposals.Post("/", proposalHandler.Create)
	proposals.Get("/", proposalHandler.List)
	proposals.Get("/:id", proposalHandler.GetByID)
	proposals.Put("/:id/status", proposalHandler.UpdateStatus)

	// Events
	events := api.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC, deps.AccessSecret)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id/status", eventHandler.UpdateStatus)

	// Tasks
	tasks := api.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.ListByEvent)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id/status", taskHandler.UpdateStatus)
	tasks.Put("/:id/assign", taskHandler.Assign)

	// Inventories
	inventories := api.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventories.Post("/", inventoryHandler.Create)
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/:id", inventoryHandler.GetByID)
}
