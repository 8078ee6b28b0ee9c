package instances

import (
	"errors"

	"status-notifier/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusRequest is the body of POST /servers/status.
type StatusRequest struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// Handler handles HTTP requests for instances.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the instance routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/servers")
	group.Get("/", h.HandleList)
	group.Post("/status", h.HandleUpdateStatus)
}

// HandleList returns every stored instance.
// @Summary List Instances
// @Description List every tracked server instance with its last known status.
// @Tags servers
// @Produce json
// @Success 200 {array} models.Instance "Instances"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /servers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing instances failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(list)
}

// HandleUpdateStatus overrides the status of a stored instance.
// @Summary Update Instance Status
// @Description Set the status of an existing instance. Unknown keys are not created.
// @Tags servers
// @Accept json
// @Produce json
// @Param request body StatusRequest true "Key and new status"
// @Success 200 {object} models.Instance "Updated instance"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /servers/status [post]
func (h *Handler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	inst, err := h.service.UpdateStatus(c.UserContext(), req.Key, req.Status)
	switch {
	case errors.Is(err, ErrKeyRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		logger.WithRayID(h.service.logger, c).Error("Instance status update failed", zap.String("key", req.Key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(inst)
}
