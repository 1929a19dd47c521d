package controller

import (
	"bufio"

	"woodshop-assistant-be/internal/dto"
	"woodshop-assistant-be/internal/pkg/serverutils"
	"woodshop-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

// Chat runs the synchronous pipeline stages first so failures still map to a
// 500 envelope, then hands the prepared run to a chunked body stream. The
// request context doubles as the cancellation signal: a client disconnect
// stops generation.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	userId := serverutils.UserId(ctx)
	if userId == "" {
		userId = serverutils.AnonymousKey
	}
	sessionKey := serverutils.SessionKey(ctx)

	run, err := c.chatService.PrepareChat(ctx.Context(), &req, userId, sessionKey)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")

	reqCtx := ctx.Context()
	reqCtx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// Mid-stream failures cannot change the status line anymore; the
		// service logs them and the truncated body is the client's signal.
		_, _ = run.Stream(reqCtx, func(token string) error {
			if _, err := w.WriteString(token); err != nil {
				return err
			}
			return w.Flush()
		})
	}))

	return nil
}
