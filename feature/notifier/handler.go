package notifier

import (
	"context"
	"errors"
	"time"

	"status-notifier/core/logger"
	"status-notifier/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Runner runs cycles and remembers the last outcome.
type Runner interface {
	RunCycle(ctx context.Context) (reconcile.Summary, error)
	LastSummary() (reconcile.Summary, bool)
}

// Planner reports the next scheduled cycle.
type Planner interface {
	Next() time.Time
}

// StatusResponse is the body of GET /notifier/status.
type StatusResponse struct {
	// Last is absent until the first cycle finished.
	Last *reconcile.Summary `json:"last,omitempty"`
	// NextRun is absent when no scheduler is running.
	NextRun *time.Time `json:"next_run,omitempty"`
}

// Handler handles HTTP requests for the notifier.
type Handler struct {
	runner  Runner
	planner Planner
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. planner may be nil.
func NewHandler(runner Runner, planner Planner, logger *zap.Logger) *Handler {
	return &Handler{runner: runner, planner: planner, logger: logger}
}

// RegisterRoutes registers the notifier routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/notifier")
	group.Post("/run", h.HandleRun)
	group.Get("/status", h.HandleStatus)
}

// HandleRun runs one cycle synchronously.
// @Summary Run Cycle
// @Description Fetch, reconcile and notify once, outside the schedule.
// @Tags notifier
// @Produce json
// @Success 200 {object} reconcile.Summary "Cycle summary"
// @Failure 409 {object} map[string]string "A cycle is already running"
// @Failure 502 {object} reconcile.Summary "Remote fetch failed"
// @Failure 500 {object} reconcile.Summary "Cycle failed"
// @Router /notifier/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	summary, err := h.runner.RunCycle(c.UserContext())
	if err == nil {
		return c.JSON(summary)
	}

	if reconcile.IsCycleInProgress(err) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	l.Warn("Manual cycle failed", zap.Error(err))
	var fetchErr *reconcile.FetchError
	if errors.As(err, &fetchErr) {
		return c.Status(fiber.StatusBadGateway).JSON(summary)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(summary)
}

// HandleStatus returns the last cycle summary and the next planned run.
// @Summary Notifier Status
// @Description Summary of the most recent cycle and the next scheduled trigger.
// @Tags notifier
// @Produce json
// @Success 200 {object} StatusResponse "Status"
// @Router /notifier/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	var resp StatusResponse
	if last, ok := h.runner.LastSummary(); ok {
		resp.Last = &last
	}
	if h.planner != nil {
		if next := h.planner.Next(); !next.IsZero() {
			resp.NextRun = &next
		}
	}
	return c.JSON(resp)
}
