package requests

// DecisionNotification is queued when a provider approves or rejects an
// appointment request and consumed by the mailer worker.
type DecisionNotification struct {
	RecipientEmail string `json:"recipient_email"`
	PatientName    string `json:"patient_name"`
	ProviderName   string `json:"provider_name"`
	Status         string `json:"status"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Response       string `json:"response,omitempty"`
}
