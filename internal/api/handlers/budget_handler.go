package handlers

import (
	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// Set godoc
// @Summary Set the budget cap for a month
// @Description Creates or overwrites the single budget for (user, month)
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.SetBudgetRequest true "Month (YYYY-MM) and amount"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string
// @Router /budget [post]
func (h *BudgetHandler) Set(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.SetBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.budgetService.SetBudget(c.Context(), userID, &req)
	if err != nil {
		return serviceError(c, h.logger, "Budget set", err)
	}

	return c.JSON(resp)
}

// List godoc
// @Summary List budgets
// @Tags budget
// @Produce json
// @Security Bearer
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (max 20)" default(20)
// @Success 200 {object} dto.BudgetListResponse
// @Router /budget [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	skip := int64(c.QueryInt("skip", 0))
	limit := int64(c.QueryInt("limit", 0))

	resp, err := h.budgetService.GetBudgets(c.Context(), userID, skip, limit)
	if err != nil {
		return serviceError(c, h.logger, "Budget list", err)
	}

	return c.JSON(resp)
}

// GetMonth godoc
// @Summary Budget vs spend for one month
// @Description Returns the cap (0 when unset) plus the month's expense and income totals
// @Tags budget
// @Produce json
// @Security Bearer
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.BudgetMonthResponse
// @Failure 400 {object} map[string]string
// @Router /budget/{month} [get]
func (h *BudgetHandler) GetMonth(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	month := c.Params("month")
	if month == "" {
		return badRequest(c, "Missing month param")
	}

	resp, err := h.budgetService.GetBudgetForMonth(c.Context(), userID, month)
	if err != nil {
		return serviceError(c, h.logger, "Budget lookup", err)
	}

	return c.JSON(resp)
}
