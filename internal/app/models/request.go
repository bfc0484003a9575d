package models

import "time"

// AppointmentRequest is a patient-initiated inquiry directed at one
// provider. Status starts at pending; only the owning provider may decide
// it, and any patient edit reopens it.
type AppointmentRequest struct {
	RequestID  string    `bson:"request_id" json:"request_id"`
	PatientID  string    `bson:"patient_id" json:"patient_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	Message    string    `bson:"message" json:"message"`
	Date       string    `bson:"date,omitempty" json:"date,omitempty"`
	Time       string    `bson:"time,omitempty" json:"time,omitempty"`
	NPINum     int64     `bson:"npi_num,omitempty" json:"npi_num,omitempty"`
	Status     string    `bson:"status" json:"status"`
	Response   *string   `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
