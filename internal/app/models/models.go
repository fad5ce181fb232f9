package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleVisitor RoleType = "visitor"
)

// DefaultOwner is the single-tenant owner value stamped on every content
// document. The site serves exactly one admin; the field exists so queries
// stay explicit instead of scattering a string literal around.
const DefaultOwner = "admin"

// MediaAsset is a file stored in the media store, referenced by its public
// URL and the object id needed to delete it later.
type MediaAsset struct {
	URL      string `json:"url" bson:"url" example:"https://media.example.com/achievements/4f1c.jpg"`
	PublicID string `json:"publicId" bson:"publicId" example:"achievements/4f1c"`
}

// MediaImage is a MediaAsset with a caption, used by the image-array content
// types (projects and certificates).
type MediaImage struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"publicId" bson:"publicId"`
	Caption  string `json:"caption" bson:"caption"`
}

// IsZero reports whether the asset references nothing.
func (a MediaAsset) IsZero() bool {
	return a.URL == "" && a.PublicID == ""
}
