package dto

// ChatTurn is one entry of the conversation history sent by the client.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest carries the full conversation; the last user turn is the
// question being answered.
type ChatRequest struct {
	Messages []ChatTurn `json:"messages" validate:"required,min=1,dive"`
}

// LastUserMessage returns the content of the most recent user turn.
func (r *ChatRequest) LastUserMessage() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == "user" {
			return r.Messages[i].Content
		}
	}
	return ""
}
