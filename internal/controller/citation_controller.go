package controller

import (
	"woodshop-assistant-be/internal/dto"
	"woodshop-assistant-be/internal/pkg/serverutils"
	"woodshop-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICitationController interface {
	RegisterRoutes(r fiber.Router)
	Links(ctx *fiber.Ctx) error
}

type citationController struct {
	citationService service.ICitationService
}

func NewCitationController(citationService service.ICitationService) ICitationController {
	return &citationController{
		citationService: citationService,
	}
}

func (c *citationController) RegisterRoutes(r fiber.Router) {
	r.Post("/links", c.Links)
}

// Links is the two-phase citation endpoint. It never returns an error status:
// the frontend renders whatever arrives, so every failure degrades to empty
// collections under a 200.
func (c *citationController) Links(ctx *fiber.Ctx) error {
	sessionKey := serverutils.SessionKey(ctx)

	var req dto.LinksRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.JSON(dto.EmptyCitationsResponse(boolPtr(false)))
	}

	// Stage phase wins when a body carries context, query and answer at
	// once, so a client resending the full payload restages rather than
	// extracting against stale state.
	if req.IsStagePhase() {
		resp, err := c.citationService.StageContext(ctx.Context(), sessionKey, &req)
		if err != nil {
			return ctx.JSON(dto.EmptyCitationsResponse(boolPtr(false)))
		}
		return ctx.JSON(resp)
	}

	if req.IsExtractPhase() {
		return ctx.JSON(c.citationService.ExtractCitations(ctx.Context(), sessionKey, req.Answer))
	}

	return ctx.JSON(dto.EmptyCitationsResponse(boolPtr(false)))
}

func boolPtr(b bool) *bool { return &b }
