package models

// Consultant is a service provider to whom slots belong. The slot registry
// only ever needs its ID; the rest is directory metadata.
type Consultant struct {
	ID        string `bson:"id" json:"id"`
	FullName  string `bson:"fullName" json:"fullName"`
	Email     string `bson:"email" json:"email"`
	Specialty string `bson:"specialty" json:"specialty"`
}
