package serverutils

import "github.com/gofiber/fiber/v2"

const (
	HeaderUserId    = "x-user-id"
	HeaderSessionId = "x-session-id"

	// AnonymousKey scopes requests that carry neither identity header.
	AnonymousKey = "anonymous"
)

// UserId returns the caller identity header, empty when absent.
func UserId(ctx *fiber.Ctx) string {
	return ctx.Get(HeaderUserId)
}

// SessionKey derives the conversation scope key: session id first, then user
// id, then the shared anonymous bucket. Two tabs of one user only stay
// isolated when the client sends x-session-id.
func SessionKey(ctx *fiber.Ctx) string {
	if sessionId := ctx.Get(HeaderSessionId); sessionId != "" {
		return sessionId
	}
	if userId := ctx.Get(HeaderUserId); userId != "" {
		return userId
	}
	return AnonymousKey
}
