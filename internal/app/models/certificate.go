package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Certificate categories.
const (
	CertificateCategoryAcademic     = "academic"
	CertificateCategoryProfessional = "professional"
	CertificateCategoryOnlineCourse = "online-course"
	CertificateCategoryWorkshop     = "workshop"
	CertificateCategoryCompetition  = "competition"
	CertificateCategoryOther        = "other"
)

// CertificateCategories is the closed set of valid certificate categories.
var CertificateCategories = []string{
	CertificateCategoryAcademic,
	CertificateCategoryProfessional,
	CertificateCategoryOnlineCourse,
	CertificateCategoryWorkshop,
	CertificateCategoryCompetition,
	CertificateCategoryOther,
}

// MaxCertificateImages caps the images array per certificate.
const MaxCertificateImages = 5

// Certificate is a credential entry. ExpirationDate is optional; a nil value
// means the credential does not expire.
type Certificate struct {
	ID                  bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Owner               string        `json:"owner" bson:"owner"`
	Title               string        `json:"title" bson:"title"`
	Description         string        `json:"description" bson:"description"`
	IssuingOrganization string        `json:"issuingOrganization" bson:"issuingOrganization" example:"AWS"`
	IssueDate           time.Time     `json:"issueDate" bson:"issueDate"`
	ExpirationDate      *time.Time    `json:"expirationDate,omitempty" bson:"expirationDate,omitempty"`
	Category            string        `json:"category" bson:"category" example:"professional"`
	Skills              []string      `json:"skills" bson:"skills"`
	CredentialID        string        `json:"credentialId" bson:"credentialId"`
	CredentialURL       string        `json:"credentialUrl" bson:"credentialUrl"`
	Images              []MediaImage  `json:"images" bson:"images"`
	Featured            bool          `json:"featured" bson:"featured"`
	CreatedAt           time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt" bson:"updatedAt"`
}
