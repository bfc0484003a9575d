package requests

// CreateRequest is a patient's appointment inquiry toward one provider.
type CreateRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
	NPINum     int64  `json:"npi_num,omitempty"`
}

// UpdateRequest uses pointers so the usecase can tell "field absent" from
// "field set to empty"; which fields are honored depends on the caller's
// role.
type UpdateRequest struct {
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Message  *string `json:"message,omitempty"`
	Status   *string `json:"status,omitempty"`
	Response *string `json:"response,omitempty"`
}
