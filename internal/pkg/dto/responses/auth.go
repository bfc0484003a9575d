package responses

// AuthUserPayload mirrors the subset of the gateway account object the
// frontend consumes.
type AuthUserPayload struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

type Auth struct {
	User        AuthUserPayload `json:"user"`
	AccessToken string          `json:"access_token"`
	Message     string          `json:"message"`
}

type AuthMessage struct {
	Message string `json:"message"`
}
