package requests

type ChatMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type Chat struct {
	Messages []ChatMessage `json:"messages"`
}
