package mediastore

import (
	"context"
	"io"
	"mime/multipart"
)

// Asset identifies a stored file: the public URL rendered to visitors and
// the object id needed to remove it later.
type Asset struct {
	URL      string
	PublicID string
}

// Constraints are the per-content-type upload rules enforced before a file
// reaches the object store.
type Constraints struct {
	// MaxSize in bytes; zero means unlimited
	MaxSize int64
	// MIMEPrefixes whitelists content types by prefix ("image/",
	// "application/pdf")
	MIMEPrefixes []string
	// RejectMessage is returned verbatim when the MIME check fails
	RejectMessage string
}

// Store is the media delegate boundary. Any object storage that hands back a
// stable URL plus a deletable id satisfies it; removals are best-effort from
// the caller's point of view.
type Store interface {
	// Upload stores one file under the given folder and returns its locator
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string, rules Constraints) (Asset, error)

	// Remove deletes a stored object by its public id
	Remove(ctx context.Context, publicID string) error

	// Fetch opens a stored object for streaming, returning the reader and
	// the object size
	Fetch(ctx context.Context, publicID string) (io.ReadCloser, int64, error)
}

// Upload rules per content type. Sizes and allow-lists follow what the admin
// UI promises; the reject messages surface unchanged as BadRequest.
var (
	ProfilePictureRules = Constraints{
		MaxSize:       5 * 1024 * 1024,
		MIMEPrefixes:  []string{"image/"},
		RejectMessage: "Only image files are allowed for profile pictures",
	}

	AchievementPhotoRules = Constraints{
		MaxSize:       10 * 1024 * 1024,
		MIMEPrefixes:  []string{"image/"},
		RejectMessage: "Only image files are allowed for achievements",
	}

	ResearchPDFRules = Constraints{
		MaxSize:       20 * 1024 * 1024,
		MIMEPrefixes:  []string{"application/pdf"},
		RejectMessage: "Only PDF files are allowed for research papers",
	}

	ProjectImageRules = Constraints{
		MaxSize:       10 * 1024 * 1024,
		MIMEPrefixes:  []string{"image/"},
		RejectMessage: "Only image files are allowed for projects",
	}

	CertificateImageRules = Constraints{
		MaxSize:       8 * 1024 * 1024,
		MIMEPrefixes:  []string{"image/"},
		RejectMessage: "Only image files are allowed for certificates",
	}
)

// Storage folders per content type.
const (
	FolderProfilePictures = "profile-pictures"
	FolderAchievements    = "achievements"
	FolderResearchPapers  = "research-papers"
	FolderProjects        = "projects"
	FolderCertificates    = "certificates"
)
