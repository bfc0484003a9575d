package responses

// Profile is the role-appropriate directory view of the caller. Provider
// fields stay empty for patients.
type Profile struct {
	Role       string `json:"role"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	PhoneNum   string `json:"phoneNum,omitempty"`
	Gender     string `json:"gender,omitempty"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
	Insurance  string `json:"insurance,omitempty"`
	Location   string `json:"location,omitempty"`
	Taxonomy   string `json:"taxonomy,omitempty"`
	PictureURL string `json:"pictureUrl,omitempty"`
}

type ProfilePicture struct {
	Message    string `json:"message"`
	PictureURL string `json:"pictureUrl"`
}
