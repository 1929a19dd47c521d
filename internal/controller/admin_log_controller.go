package controller

import (
	"woodshop-assistant-be/internal/pkg/logger"
	"woodshop-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IAdminLogController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogById(ctx *fiber.Ctx) error
}

// adminLogController exposes the rotated JSON log file for operators. JWT
// protected; everything else on the API stays open.
type adminLogController struct {
	logger logger.ILogger
}

func NewAdminLogController(logger logger.ILogger) IAdminLogController {
	return &adminLogController{
		logger: logger,
	}
}

func (c *adminLogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogById)
}

func (c *adminLogController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "Failed to read logs")
	}

	return ctx.JSON(fiber.Map{
		"logs":   logs,
		"limit":  limit,
		"offset": offset,
	})
}

func (c *adminLogController) GetLogById(ctx *fiber.Ctx) error {
	entry, err := c.logger.GetLogById(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Log entry not found")
	}
	return ctx.JSON(entry)
}
