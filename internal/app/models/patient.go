package models

type Patient struct {
	PatientID  string `bson:"patient_id" json:"patient_id"`
	FirstName  string `bson:"first_name" json:"first_name"`
	LastName   string `bson:"last_name" json:"last_name"`
	PhoneNum   string `bson:"phone_num,omitempty" json:"phone_num,omitempty"`
	Gender     string `bson:"gender,omitempty" json:"gender,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	Insurance  string `bson:"insurance,omitempty" json:"insurance,omitempty"`
	Email      string `bson:"email,omitempty" json:"email,omitempty"`
	PictureURL string `bson:"picture_url,omitempty" json:"picture_url,omitempty"`
}
