package responses

import "medidata-service/internal/app/models"

// RequestItem is the list view of an appointment request, enriched with the
// counterpart's display name and specialty. Field names follow the frontend
// contract.
type RequestItem struct {
	ID            string `json:"id"`
	ProviderName  string `json:"providerName"`
	Specialty     string `json:"specialty"`
	RequestedDate string `json:"requestedDate"`
	RequestedTime string `json:"requestedTime"`
	CreatedAt     string `json:"createdAt"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	Response      string `json:"response"`
	ProviderID    string `json:"provider_id"`
	PatientID     string `json:"patient_id"`
}

type RequestList struct {
	Requests []RequestItem `json:"requests"`
}

type RequestMutation struct {
	Message string                     `json:"message"`
	Request *models.AppointmentRequest `json:"request,omitempty"`
}
