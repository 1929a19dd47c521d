package controller

import (
	"errors"

	"woodshop-assistant-be/internal/pkg/serverutils"
	"woodshop-assistant-be/internal/service"
	"woodshop-assistant-be/pkg/identity"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetUser(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Get("/user", c.GetUser)
}

// GetUser proxies the identity provider, mapping its failures onto the
// statuses the frontend distinguishes.
func (c *userController) GetUser(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)
	if userId == "" {
		return serverutils.ErrorResponse(ctx, fiber.StatusUnauthorized, "User ID is required")
	}

	user, err := c.userService.GetUser(ctx.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrMissingSecret):
			return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "Server configuration error")
		case errors.Is(err, identity.ErrNotFound):
			return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "User not found")
		case errors.Is(err, identity.ErrUnauthorized):
			return serverutils.ErrorResponse(ctx, fiber.StatusUnauthorized, "Identity provider rejected the request")
		default:
			return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "Failed to fetch user")
		}
	}

	return ctx.JSON(user)
}
