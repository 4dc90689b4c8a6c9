package http

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"datasync-service/internal/service"
	"datasync-service/pkg/models"
)

type Handler struct {
	coordinator *service.Coordinator
}

func NewHandler(coordinator *service.Coordinator) *Handler {
	return &Handler{coordinator: coordinator}
}

// Sync is the write endpoint. The body carries the action and its fields;
// every core outcome comes back as an HTTP 200 envelope — only an
// unparseable body is a transport-level 400.
func (h *Handler) Sync(c *fiber.Ctx) error {
	var req models.SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	log.Printf("📥 [SYNC] Action=%s | User=%q | Tables=%d | ReqID=%v",
		req.Action, req.Username, len(req.Data), c.Locals("request_id"))

	env := h.coordinator.Handle(c.Context(), &req)
	if env.Status == models.StatusError {
		log.Printf("❌ [SYNC] Action=%s | User=%q → %s", req.Action, req.Username, env.Message)
	}
	return c.JSON(env)
}

// GetData is the read endpoint: action and username arrive as query
// parameters, everything else is the same envelope contract.
func (h *Handler) GetData(c *fiber.Ctx) error {
	req := models.SyncRequest{
		Action:   c.Query("action"),
		Username: c.Query("username"),
	}

	env := h.coordinator.Handle(c.Context(), &req)
	if env.Status == models.StatusError {
		log.Printf("❌ [READ] Action=%s | User=%q → %s", req.Action, req.Username, env.Message)
	}
	return c.JSON(env)
}
