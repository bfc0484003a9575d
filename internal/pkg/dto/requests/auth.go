package requests

// Register carries both account credentials and the demographic fields for
// the caller's directory row. Provider-only fields are ignored for
// patients.
type Register struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Role          string `json:"role" validate:"required"`
	PhoneNum      string `json:"phoneNum,omitempty"`
	Gender        string `json:"gender,omitempty"`
	State         string `json:"state,omitempty"`
	City          string `json:"city,omitempty"`
	Insurance     string `json:"insurance,omitempty"`
	Location      string `json:"location,omitempty"`
	Taxonomy      string `json:"taxonomy,omitempty"`
	ProviderEmail string `json:"providerEmail,omitempty" validate:"omitempty,email"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Email struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	AccessToken string `json:"access_token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
