package dto

import "github.com/tahsin/scholarfolio/internal/app/models"

// CreateCertificateRequest carries the multipart form fields of a new
// certificate. Image files arrive as `images` parts.
type CreateCertificateRequest struct {
	Title               string   `form:"title" json:"title"`
	Description         string   `form:"description" json:"description"`
	IssuingOrganization string   `form:"issuingOrganization" json:"issuingOrganization"`
	IssueDate           string   `form:"issueDate" json:"issueDate" example:"2023-08-10"`
	ExpirationDate      string   `form:"expirationDate" json:"expirationDate"`
	Category            string   `form:"category" json:"category"`
	Skills              []string `form:"skills" json:"skills"`
	CredentialID        string   `form:"credentialId" json:"credentialId"`
	CredentialURL       string   `form:"credentialUrl" json:"credentialUrl"`
	Featured            bool     `form:"featured" json:"featured"`
}

// UpdateCertificateRequest uses pointer fields for presence detection; see
// UpdateProjectRequest for the ExistingImages contract.
type UpdateCertificateRequest struct {
	Title               *string              `form:"title" json:"title"`
	Description         *string              `form:"description" json:"description"`
	IssuingOrganization *string              `form:"issuingOrganization" json:"issuingOrganization"`
	IssueDate           *string              `form:"issueDate" json:"issueDate"`
	ExpirationDate      *string              `form:"expirationDate" json:"expirationDate"`
	Category            *string              `form:"category" json:"category"`
	Skills              []string             `form:"skills" json:"skills"`
	CredentialID        *string              `form:"credentialId" json:"credentialId"`
	CredentialURL       *string              `form:"credentialUrl" json:"credentialUrl"`
	Featured            *bool                `form:"featured" json:"featured"`
	ExistingImages      *[]models.MediaImage `form:"-" json:"existingImages"`
}
