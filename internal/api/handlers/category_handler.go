package handlers

import (
	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.categoryService.Create(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrCategoryExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Category already exists",
			})
		}
		return serviceError(c, h.logger, "Category create", err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security Bearer
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.CategoryListResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	skip := int64(c.QueryInt("skip", 0))
	limit := int64(c.QueryInt("limit", 0))

	resp, err := h.categoryService.List(c.Context(), userID, skip, limit)
	if err != nil {
		return serviceError(c, h.logger, "Category list", err)
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get one category
// @Tags categories
// @Produce json
// @Security Bearer
// @Param id path string true "Category id"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	resp, err := h.categoryService.GetByID(c.Context(), userID, id)
	if err != nil {
		return serviceError(c, h.logger, "Category lookup", err)
	}
	if resp == nil {
		return notFound(c, "Category")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Category id"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.categoryService.Update(c.Context(), userID, id, &req)
	if err != nil {
		if err == service.ErrCategoryExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Category already exists",
			})
		}
		return serviceError(c, h.logger, "Category update", err)
	}
	if resp == nil {
		return notFound(c, "Category")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Soft-delete a category
// @Tags categories
// @Produce json
// @Security Bearer
// @Param id path string true "Category id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	deleted, err := h.categoryService.Delete(c.Context(), userID, id)
	if err != nil {
		return serviceError(c, h.logger, "Category delete", err)
	}
	if !deleted {
		return notFound(c, "Category")
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
