package models

// AuthUser is the gateway's view of an authenticated account, resolved from
// a bearer token. Role is carried in user metadata and defaults to patient
// when absent, matching the gateway's signup contract.
type AuthUser struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

func (u *AuthUser) Role() string {
	if u == nil || u.UserMetadata == nil {
		return "patient"
	}
	role, ok := u.UserMetadata["role"]
	if !ok || role == "" {
		return "patient"
	}
	return role
}

func (u *AuthUser) IsPatient() bool {
	return u.Role() == "patient"
}

func (u *AuthUser) IsProvider() bool {
	return u.Role() == "provider"
}
