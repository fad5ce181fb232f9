package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/models/dto"
	"github.com/tahsin/scholarfolio/internal/app/repositories"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/logger"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
	"github.com/tahsin/scholarfolio/internal/pkg/validation"
)

// DefaultAboutText seeds the about section until the admin writes one.
const DefaultAboutText = "Welcome! This section has not been filled in yet."

// ContactNotifier is told about new visitor messages. Notification is
// best-effort; a failure never rejects the message.
type ContactNotifier interface {
	NotifyContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// ProfileService defines the interface for profile singleton operations
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateHero(ctx context.Context, req *dto.UpdateHeroRequest) (*models.Profile, error)
	UploadProfilePicture(ctx context.Context, picture *multipart.FileHeader) (*models.Profile, error)
	UpdateAcademic(ctx context.Context, req *dto.UpdateAcademicRequest) (*models.Profile, error)
	UpdateAbout(ctx context.Context, req *dto.UpdateAboutRequest) (*models.Profile, error)
	UpdateNews(ctx context.Context, req *dto.UpdateNewsRequest) (*models.Profile, error)
	DeleteNewsItem(ctx context.Context, id string) (*models.Profile, error)
	UpdateCourses(ctx context.Context, req *dto.UpdateCoursesRequest) (*models.Profile, error)
	DeleteCourse(ctx context.Context, id string) (*models.Profile, error)
	UpdateContactInfo(ctx context.Context, req *dto.UpdateContactInfoRequest) (*models.Profile, error)
	SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) error
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	repo     repositories.IProfileRepository
	media    mediastore.Store
	notifier ContactNotifier
}

// NewProfileService creates a new ProfileService. notifier may be nil when
// mail is not configured.
func NewProfileService(repo repositories.IProfileRepository, media mediastore.Store, notifier ContactNotifier) ProfileService {
	return &profileServiceImpl{repo: repo, media: media, notifier: notifier}
}

// GetProfile returns the singleton. Before the first admin write the site
// still needs something to render, so an absent document comes back as an
// empty profile with defaults instead of a 404.
func (s *profileServiceImpl) GetProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repo.GetByOwner(ctx, models.DefaultOwner)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return &models.Profile{
				Owner:        models.DefaultOwner,
				About:        DefaultAboutText,
				Education:    []models.Education{},
				Philosophies: []models.Philosophy{},
				NewsItems:    []models.NewsItem{},
				Courses:      []models.Course{},
				OfficeHours:  []models.OfficeHour{},
				ContactMsgs:  []models.ContactMessage{},
			}, nil
		}
		return nil, err
	}
	return profile, nil
}

// UpdateHero updates the hero section. The full name can be changed but
// never emptied.
func (s *profileServiceImpl) UpdateHero(ctx context.Context, req *dto.UpdateHeroRequest) (*models.Profile, error) {
	fields := bson.M{}
	if req.FullName != nil && *req.FullName != "" {
		fields["fullName"] = *req.FullName
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}
	return s.repo.UpsertFields(ctx, models.DefaultOwner, fields)
}

// UploadProfilePicture stores the new picture and best-effort deletes the
// replaced asset.
func (s *profileServiceImpl) UploadProfilePicture(ctx context.Context, picture *multipart.FileHeader) (*models.Profile, error) {
	if picture == nil {
		return nil, apperrors.NewBadRequestError("Profile picture file is required")
	}

	asset, err := s.media.Upload(ctx, picture, mediastore.FolderProfilePictures, mediastore.ProfilePictureRules)
	if err != nil {
		return nil, err
	}

	var oldID string
	if existing, err := s.repo.GetByOwner(ctx, models.DefaultOwner); err == nil {
		oldID = existing.ProfilePicture.PublicID
	}

	profile, err := s.repo.UpsertFields(ctx, models.DefaultOwner, bson.M{
		"profilePicture": models.MediaAsset{URL: asset.URL, PublicID: asset.PublicID},
	})
	if err != nil {
		removeAssetQuietly(ctx, s.media, asset.PublicID)
		return nil, err
	}

	removeAssetQuietly(ctx, s.media, oldID)
	return profile, nil
}

// UpdateAcademic rewrites the education list. Every entry needs a degree,
// an institution and a year; a single bad entry rejects the whole update.
func (s *profileServiceImpl) UpdateAcademic(ctx context.Context, req *dto.UpdateAcademicRequest) (*models.Profile, error) {
	if req.Education == nil {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}

	var v validation.Violations
	for _, e := range req.Education {
		v.Require(e.Degree, "Each education entry needs a degree")
		v.Require(e.Institution, "Each education entry needs an institution")
		v.Require(e.Year, "Each education entry needs a year")
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	return s.repo.UpsertFields(ctx, models.DefaultOwner, bson.M{"education": req.Education})
}

// UpdateAbout updates the about section. An explicit empty cvUrl clears the
// CV link.
func (s *profileServiceImpl) UpdateAbout(ctx context.Context, req *dto.UpdateAboutRequest) (*models.Profile, error) {
	fields := bson.M{}
	if req.About != nil && *req.About != "" {
		fields["about"] = *req.About
	}
	if req.Philosophies != nil {
		var v validation.Violations
		for _, p := range req.Philosophies {
			v.Require(p.Title, "Each philosophy needs a title")
			v.Require(p.Description, "Each philosophy needs a description")
		}
		if !v.OK() {
			return nil, apperrors.NewValidationError(v.Message())
		}
		fields["philosophies"] = req.Philosophies
	}
	if req.CvURL != nil {
		fields["cvUrl"] = *req.CvURL
	}
	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}
	return s.repo.UpsertFields(ctx, models.DefaultOwner, fields)
}

// UpdateNews replaces the news feed wholesale. Validation failures leave
// the stored feed untouched.
func (s *profileServiceImpl) UpdateNews(ctx context.Context, req *dto.UpdateNewsRequest) (*models.Profile, error) {
	var v validation.Violations
	for _, item := range req.NewsItems {
		v.Require(item.Title, "Each news item needs a title")
		v.Require(item.Description, "Each news item needs a description")
		v.Require(item.Date, "Each news item needs a date")
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	items := make([]models.NewsItem, len(req.NewsItems))
	for i, item := range req.NewsItems {
		if item.ID.IsZero() {
			item.ID = bson.NewObjectID()
		}
		items[i] = item
	}

	return s.repo.UpsertFields(ctx, models.DefaultOwner, bson.M{"newsItems": items})
}

// DeleteNewsItem removes one entry from the feed by its element id.
func (s *profileServiceImpl) DeleteNewsItem(ctx context.Context, id string) (*models.Profile, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.GetByOwner(ctx, models.DefaultOwner)
	if err != nil {
		return nil, err
	}

	kept := make([]models.NewsItem, 0, len(profile.NewsItems))
	for _, item := range profile.NewsItems {
		if item.ID != oid {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(profile.NewsItems) {
		return nil, apperrors.NewNotFoundError("News item not found")
	}

	return s.repo.UpsertFields(ctx, models.DefaultOwner, bson.M{"newsItems": kept})
}

// UpdateCourses replaces the courses list wholesale, enforcing the category
// enum per entry.
func (s *profileServiceImpl) UpdateCourses(ctx context.Context, req *dto.UpdateCoursesRequest) (*models.Profile, error) {
	var v validation.Violations
	for _, course := range req.Courses {
		v.Require(course.Title, "Each course needs a title")
		v.Require(course.Platform, "Each course needs a platform")
		v.RequireOneOf(course.Category, models.CourseCategories,
			validation.OneOfMessage("course category", models.CourseCategories))
	}
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}

	courses := make([]models.Course, len(req.Courses))
	for i, course := range req.Courses {
		if course.ID.IsZero() {
			course.ID = bson.NewObjectID()
		}
		courses[i] = course
	}

	return s.repo.UpsertFields(ctx, models.DefaultOwner, bson.M{"courses": courses})
}

// DeleteCourse removes one course by its element id.
func (s *profileServiceImpl) DeleteCourse(ctx context.Context, id string) (*models.Profile, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.GetByOwner(ctx, models.DefaultOwner)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Course, 0, len(profile.Courses))
	for _, course := range profile.Courses {
		if course.ID != oid {
			kept = append(kept, course)
		}
	}
	if len(kept) == len(profile.Courses) {
		return nil, apperrors.NewNotFoundError("Course not found")
	}

	return s.repo.UpsertFields(ctx, models.DefaultOwner, bson.M{"courses": kept})
}

// UpdateContactInfo updates the contact section. Present emails must be
// well-formed; office hours need a day and a time range per slot.
func (s *profileServiceImpl) UpdateContactInfo(ctx context.Context, req *dto.UpdateContactInfoRequest) (*models.Profile, error) {
	var v validation.Violations
	fields := bson.M{}

	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.AdminEmail != nil && *req.AdminEmail != "" {
		v.RequireEmail(*req.AdminEmail, "Invalid admin email address")
		fields["adminEmail"] = *req.AdminEmail
	}
	if req.MsgEmail != nil && *req.MsgEmail != "" {
		v.RequireEmail(*req.MsgEmail, "Invalid message email address")
		fields["msgEmail"] = *req.MsgEmail
	}
	if req.OfficeLocation != nil {
		fields["officeLocation"] = *req.OfficeLocation
	}
	if req.OfficeHours != nil {
		for _, slot := range req.OfficeHours {
			v.Require(slot.Day, "Each office hour slot needs a day")
			v.Require(slot.Hours, "Each office hour slot needs a time range")
		}
		fields["officeHours"] = req.OfficeHours
	}

	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message())
	}
	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}
	return s.repo.UpsertFields(ctx, models.DefaultOwner, fields)
}

// SubmitContactMessage stores a visitor message and pings the notifier.
func (s *profileServiceImpl) SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) error {
	var v validation.Violations
	v.Require(req.Name, "Name is required")
	v.Require(req.Email, "Email is required")
	v.Require(req.Subject, "Subject is required")
	v.Require(req.Message, "Message is required")
	if req.Email != "" {
		v.RequireEmail(req.Email, "Invalid email address")
	}
	if !v.OK() {
		return apperrors.NewValidationError(v.Message())
	}

	msg := models.ContactMessage{
		ID:        bson.NewObjectID(),
		Name:      req.Name,
		MsgEmail:  req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.PushContactMessage(ctx, models.DefaultOwner, msg); err != nil {
		return err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContactMessage(ctx, msg); err != nil {
			logger.Warn().Err(err).Str("subject", msg.Subject).Msg("Failed to send contact notification")
		}
	}
	return nil
}

// ListMessages returns the stored visitor messages, newest first.
func (s *profileServiceImpl) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	profile, err := s.repo.GetByOwner(ctx, models.DefaultOwner)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return []models.ContactMessage{}, nil
		}
		return nil, err
	}

	messages := make([]models.ContactMessage, len(profile.ContactMsgs))
	copy(messages, profile.ContactMsgs)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

// DeleteMessage removes one visitor message by id.
func (s *profileServiceImpl) DeleteMessage(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.repo.PullContactMessage(ctx, models.DefaultOwner, oid)
}
