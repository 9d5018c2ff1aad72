// Package main provides the AI-Flow API server implementation.
package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/aiflow/aiflow/pkg/eventbus"
	"github.com/aiflow/aiflow/pkg/events"
	"github.com/aiflow/aiflow/pkg/persistence"
	"github.com/aiflow/aiflow/pkg/services"
	"github.com/aiflow/aiflow/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type API struct {
	logger      *slog.Logger
	appName     string
	persistence persistence.Persistence
	eventBus    eventbus.EventBus
	validate    *validator.Validate

	workflows  *services.Workflow
	canvases   *services.Canvas
	aiModules  *services.AIModule
	dispatcher *services.Dispatcher
}

// NewAPI wires the services over persistence. appName is shown in the root
// greeting. eventBus may be nil, in which case no lifecycle events are published.
func NewAPI(
	logger *slog.Logger,
	appName string,
	persistence persistence.Persistence,
	eventBus eventbus.EventBus,
	dispatcherOpts ...services.DispatcherOption,
) *API {
	var publisher eventbus.EventPublisher
	if eventBus != nil {
		publisher = eventBus
		dispatcherOpts = append(dispatcherOpts, services.WithPublisher(eventBus))
	}

	return &API{
		logger:      logger,
		appName:     appName,
		persistence: persistence,
		eventBus:    eventBus,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		workflows:   services.NewWorkflow(persistence, publisher),
		canvases:    services.NewCanvas(persistence, publisher),
		aiModules:   services.NewAIModule(persistence, publisher),
		dispatcher:  services.NewDispatcher(persistence, dispatcherOpts...),
	}
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(a.workflows, a.canvases, a.aiModules, a.dispatcher, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to " + a.appName + " API"})
	})

	w := app.Group("/workflows")
	w.Get("/", handlers.GetWorkflows)
	w.Post("/", handlers.CreateWorkflow)
	w.Get("/:id", handlers.GetWorkflow)
	w.Patch("/:id", handlers.UpdateWorkflow)
	w.Put("/:id", handlers.UpdateWorkflow)
	w.Delete("/:id", handlers.DeleteWorkflow)

	// Canvas endpoints:
	w.Get("/:id/canvas", handlers.GetWorkflowCanvas)
	w.Post("/:id/canvas", handlers.SaveWorkflowCanvas)
	w.Put("/:id/canvas", handlers.SaveWorkflowCanvas)
	w.Get("/data/:id", handlers.GetWorkflowCanvas)
	w.Post("/data/:id", handlers.SaveWorkflowCanvas)

	m := app.Group("/ai-modules")
	m.Get("/", handlers.GetAIModules)
	m.Post("/", handlers.CreateAIModule)
	m.Get("/:id", handlers.GetAIModule)
	m.Post("/:id/run", handlers.RunAIModule)
	m.Post("/run/:id", handlers.RunAIModule)

	app.Get("/health", handlers.HealthCheck)

	return app
}

// Seed registers the built-in module library.
func (a *API) Seed(ctx context.Context) error {
	seeded, err := a.aiModules.Seed(ctx)
	if err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Seeded default AI modules", "count", len(seeded))

	return nil
}

// WatchEvents logs every lifecycle event at debug level.
func (a *API) WatchEvents(ctx context.Context) error {
	if a.eventBus == nil {
		return nil
	}

	eventTypes := []events.EventType{
		events.WorkflowCreatedEvent,
		events.WorkflowUpdatedEvent,
		events.WorkflowDeletedEvent,
		events.CanvasSavedEvent,
		events.AIModuleCreatedEvent,
		events.AIModuleRunCompletedEvent,
		events.AIModuleRunFailedEvent,
	}

	for _, eventType := range eventTypes {
		err := a.eventBus.Handle(eventType, func(ctx context.Context, event any) error {
			a.logger.DebugContext(ctx, "Lifecycle event", "event_type", eventType, "event", event)

			return nil
		})
		if err != nil {
			return err
		}
	}

	return a.eventBus.Subscribe(ctx)
}

func (a *API) Start(host string, port int) error {
	app := a.App()

	err := app.Listen(host + ":" + strconv.Itoa(port))

	return err
}
