package web

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/haus-node/haus/pkg/broadcast"
	"github.com/haus-node/haus/pkg/credits"
	"github.com/haus-node/haus/pkg/persistence"
	"github.com/haus-node/haus/pkg/queue"
	"github.com/haus-node/haus/pkg/registry"
)

// API assembles the fiber application.
type API struct {
	logger   *slog.Logger
	handlers *APIHandlers
}

func NewAPI(
	logger *slog.Logger,
	p persistence.Persistence,
	reg *registry.Registry,
	ledger credits.Ledger,
	q *queue.Queue,
	b broadcast.Broadcaster,
) *API {
	return &API{
		logger:   logger,
		handlers: NewAPIHandlers(p, reg, ledger, q, b),
	}
}

func (a *API) App() *fiber.App {
	app := fiber.New()
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("haus API")
	})

	app.Get("/nodes", a.handlers.GetNodes)

	app.Post("/workspaces", a.handlers.CreateWorkspace)

	ws := app.Group("/workspaces/:workspaceId")
	ws.Get("/", a.handlers.GetWorkspace)
	ws.Get("/workflows", a.handlers.GetWorkflows)
	ws.Post("/workflows", a.handlers.CreateWorkflow)
	ws.Get("/jobs", a.handlers.GetJobs)
	ws.Post("/jobs", a.handlers.CreateJob)

	wf := app.Group("/workflows")
	wf.Get("/:id", a.handlers.GetWorkflow)
	wf.Patch("/:id", a.handlers.UpdateWorkflow)
	wf.Delete("/:id", a.handlers.DeleteWorkflow)

	jobs := app.Group("/jobs")
	jobs.Get("/:id", a.handlers.GetJob)
	jobs.Get("/:id/events", a.handlers.StreamJobEvents)

	app.Get("/health", a.handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	return a.App().Listen(":" + strconv.Itoa(port))
}
