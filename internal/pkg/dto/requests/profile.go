package requests

// UpdateProfile carries a partial profile edit. Location and taxonomy are
// only honored for providers.
type UpdateProfile struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	PhoneNum  *string `json:"phoneNum,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	State     *string `json:"state,omitempty"`
	City      *string `json:"city,omitempty"`
	Insurance *string `json:"insurance,omitempty"`
	Location  *string `json:"location,omitempty"`
	Taxonomy  *string `json:"taxonomy,omitempty"`
}
