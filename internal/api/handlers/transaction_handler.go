package handlers

import (
	"strconv"

	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	logger             *zap.Logger
}

func NewTransactionHandler(transactionService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Create godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.transactionService.Create(c.Context(), userID, &req)
	if err != nil {
		return serviceError(c, h.logger, "Transaction create", err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List transactions
// @Description Paged list with optional category/type/amount/date filters
// @Tags transactions
// @Produce json
// @Security Bearer
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (max 20)" default(20)
// @Param category query string false "Category id"
// @Param type query string false "income or expense"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Param sortBy query string false "createdAt or amount"
// @Param sortDir query string false "asc or desc"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	params := &service.TransactionListParams{
		Skip:      int64(c.QueryInt("skip", 0)),
		Limit:     int64(c.QueryInt("limit", 0)),
		Category:  c.Query("category"),
		Type:      c.Query("type"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		SortBy:    c.Query("sortBy"),
		SortDir:   c.Query("sortDir"),
	}

	if raw := c.Query("minAmount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(c, "Invalid minAmount")
		}
		params.MinAmount = &v
	}
	if raw := c.Query("maxAmount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(c, "Invalid maxAmount")
		}
		params.MaxAmount = &v
	}

	resp, err := h.transactionService.List(c.Context(), userID, params)
	if err != nil {
		return serviceError(c, h.logger, "Transaction list", err)
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get one transaction
// @Tags transactions
// @Produce json
// @Security Bearer
// @Param id path string true "Transaction id"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transaction id")
	}

	resp, err := h.transactionService.GetByID(c.Context(), userID, id)
	if err != nil {
		return serviceError(c, h.logger, "Transaction lookup", err)
	}
	if resp == nil {
		return notFound(c, "Transaction")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Transaction id"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transaction id")
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.transactionService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return serviceError(c, h.logger, "Transaction update", err)
	}
	if resp == nil {
		return notFound(c, "Transaction")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Soft-delete a transaction
// @Tags transactions
// @Produce json
// @Security Bearer
// @Param id path string true "Transaction id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transaction id")
	}

	deleted, err := h.transactionService.Delete(c.Context(), userID, id)
	if err != nil {
		return serviceError(c, h.logger, "Transaction delete", err)
	}
	if !deleted {
		return notFound(c, "Transaction")
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}
