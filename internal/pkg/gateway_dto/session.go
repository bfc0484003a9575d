package gateway_dto

// User is the gateway account object as returned by the /signup, /token and
// /user endpoints.
type User struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	EmailConfirmedAt string            `json:"email_confirmed_at,omitempty"`
	UserMetadata     map[string]string `json:"user_metadata,omitempty"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         User   `json:"user"`
}

// SignUpResult covers both gateway signup modes. Session is nil when email
// confirmation is pending and only the bare user object came back.
type SignUpResult struct {
	User    User
	Session *Session
}
