package handlers

import (
	"github.com/SahO-ux/budget-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Get godoc
// @Summary Dashboard analytics
// @Description Category and monthly rollups over the user's whole history
// @Tags analytics
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AnalyticsResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) Get(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	resp, err := h.analyticsService.GetAnalytics(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, "Analytics", err)
	}

	return c.JSON(resp)
}
