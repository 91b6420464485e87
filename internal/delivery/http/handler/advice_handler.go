package handler

import (
	"career-compass/internal/advisor"
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AdviceHandler serves AI career advice. When no advisor client is
// configured (no API key) the endpoint reports unavailable instead of
// failing at boot.
type AdviceHandler struct {
	advisor *advisor.Client
}

func NewAdviceHandler(advisorClient *advisor.Client) *AdviceHandler {
	return &AdviceHandler{advisor: advisorClient}
}

func (h *AdviceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/advice", h.HandleAdvice)
}

func (h *AdviceHandler) HandleAdvice(c fiber.Ctx) error {
	if h.advisor == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "career advice is not configured", nil, nil)
	}

	var req dto.CareerAdviceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if len(req.Skills) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "skills are required", nil, nil)
	}

	advice := h.advisor.CareerAdvice(c.Context(), req.Skills, req.Goals)
	return response.Success(c, fiber.StatusOK, "success", dto.CareerAdviceResponse{Advice: advice})
}
