package models

// Favorite bookmarks either a directory provider (ProviderID set) or a
// registry provider (ProviderNPI set). The two keys are mutually exclusive
// per row.
type Favorite struct {
	FavoriteID  string `bson:"favorite_id" json:"favorite_id"`
	PatientID   string `bson:"patient_id" json:"patient_id"`
	ProviderID  string `bson:"provider_id,omitempty" json:"provider_id,omitempty"`
	ProviderNPI int64  `bson:"provider_npi,omitempty" json:"provider_npi,omitempty"`
}
