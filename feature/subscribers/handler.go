package subscribers

import (
	"errors"

	"status-notifier/core/logger"
	"status-notifier/core/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubscriberResponse is the API representation of a subscriber.
type SubscriberResponse struct {
	ID        uint     `json:"id"`
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Email     string   `json:"email"`
	Servers   []string `json:"servers"`
}

func toResponse(sub models.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:        sub.ID,
		Firstname: sub.Firstname,
		Lastname:  sub.Lastname,
		Email:     sub.Email,
		Servers:   sub.Keys(),
	}
}

// Handler handles HTTP requests for subscribers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the subscriber routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/subscribers")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleUpsert)
}

// HandleList returns the registered subscribers.
// @Summary List Subscribers
// @Description List subscribers, optionally only those watching one server key.
// @Tags subscribers
// @Produce json
// @Param server query string false "Only subscribers of this instance key"
// @Success 200 {array} SubscriberResponse "Subscribers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /subscribers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext(), c.Query("server"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing subscribers failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	out := make([]SubscriberResponse, len(list))
	for i, sub := range list {
		out[i] = toResponse(sub)
	}
	return c.JSON(out)
}

// HandleUpsert registers or replaces a subscriber by email.
// @Summary Register Subscriber
// @Description Create a subscriber, or replace the one registered with the same email.
// @Tags subscribers
// @Accept json
// @Produce json
// @Param request body Input true "Subscriber"
// @Success 200 {object} SubscriberResponse "Replaced"
// @Success 201 {object} SubscriberResponse "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /subscribers [post]
func (h *Handler) HandleUpsert(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	sub, created, err := h.service.Upsert(c.UserContext(), in)
	if errors.Is(err, ErrInvalidSubscriber) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Subscriber upsert failed", zap.String("email", in.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(toResponse(*sub))
}
