package models

// Provider is a directory row for an affiliated provider. The identity is
// the auth-gateway user id, not a Mongo ObjectID, so rows can be matched
// against token subjects directly.
type Provider struct {
	ProviderID   string `bson:"provider_id" json:"provider_id"`
	FirstName    string `bson:"first_name" json:"first_name"`
	LastName     string `bson:"last_name" json:"last_name"`
	PhoneNum     string `bson:"phone_num,omitempty" json:"phone_num,omitempty"`
	Gender       string `bson:"gender,omitempty" json:"gender,omitempty"`
	State        string `bson:"state,omitempty" json:"state,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	Insurance    string `bson:"insurance,omitempty" json:"insurance,omitempty"`
	Location     string `bson:"location,omitempty" json:"location,omitempty"`
	Taxonomy     string `bson:"taxonomy,omitempty" json:"taxonomy,omitempty"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	ProviderType string `bson:"provider_type,omitempty" json:"provider_type,omitempty"`
	PictureURL   string `bson:"picture_url,omitempty" json:"picture_url,omitempty"`
}
