package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/repositories"
	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/mediastore"
)

// fakeStore is an in-memory mediastore.Store recording uploads and removals.
type fakeStore struct {
	uploads    []string
	removed    []string
	failUpload bool
}

func (f *fakeStore) Upload(_ context.Context, fileHeader *multipart.FileHeader, folder string, _ mediastore.Constraints) (mediastore.Asset, error) {
	if f.failUpload {
		return mediastore.Asset{}, errors.New("upload failed")
	}
	publicID := fmt.Sprintf("%s/%d-%s", folder, len(f.uploads), fileHeader.Filename)
	f.uploads = append(f.uploads, publicID)
	return mediastore.Asset{
		URL:      "http://media.test/" + publicID,
		PublicID: publicID,
	}, nil
}

func (f *fakeStore) Remove(_ context.Context, publicID string) error {
	f.removed = append(f.removed, publicID)
	return nil
}

func (f *fakeStore) Fetch(_ context.Context, publicID string) (io.ReadCloser, int64, error) {
	content := "content of " + publicID
	return io.NopCloser(strings.NewReader(content)), int64(len(content)), nil
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 1024}
}

// fakeAchievementRepo keeps achievements in a map.
type fakeAchievementRepo struct {
	items map[bson.ObjectID]*models.Achievement
	fail  bool
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{items: make(map[bson.ObjectID]*models.Achievement)}
}

func (r *fakeAchievementRepo) Create(_ context.Context, a *models.Achievement) (*models.Achievement, error) {
	if r.fail {
		return nil, errors.New("write failed")
	}
	a.ID = bson.NewObjectID()
	cp := *a
	r.items[a.ID] = &cp
	return a, nil
}

func (r *fakeAchievementRepo) GetByID(_ context.Context, id bson.ObjectID) (*models.Achievement, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrAchievementNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAchievementRepo) List(_ context.Context, owner string) ([]models.Achievement, error) {
	out := []models.Achievement{}
	for _, a := range r.items {
		if a.Owner == owner {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeAchievementRepo) Update(_ context.Context, a *models.Achievement) (*models.Achievement, error) {
	if _, ok := r.items[a.ID]; !ok {
		return nil, apperrors.ErrAchievementNotFound
	}
	cp := *a
	r.items[a.ID] = &cp
	return a, nil
}

func (r *fakeAchievementRepo) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrAchievementNotFound
	}
	delete(r.items, id)
	return nil
}

// fakeResearchRepo keeps papers in a map.
type fakeResearchRepo struct {
	items map[bson.ObjectID]*models.ResearchPaper
	fail  bool
}

func newFakeResearchRepo() *fakeResearchRepo {
	return &fakeResearchRepo{items: make(map[bson.ObjectID]*models.ResearchPaper)}
}

func (r *fakeResearchRepo) Create(_ context.Context, p *models.ResearchPaper) (*models.ResearchPaper, error) {
	if r.fail {
		return nil, errors.New("write failed")
	}
	p.ID = bson.NewObjectID()
	cp := *p
	r.items[p.ID] = &cp
	return p, nil
}

func (r *fakeResearchRepo) GetByID(_ context.Context, id bson.ObjectID) (*models.ResearchPaper, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrResearchNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeResearchRepo) List(_ context.Context, owner string) ([]models.ResearchPaper, error) {
	out := []models.ResearchPaper{}
	for _, p := range r.items {
		if p.Owner == owner {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedDate.After(out[j].PublishedDate) })
	return out, nil
}

func (r *fakeResearchRepo) Update(_ context.Context, p *models.ResearchPaper) (*models.ResearchPaper, error) {
	if _, ok := r.items[p.ID]; !ok {
		return nil, apperrors.ErrResearchNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return p, nil
}

func (r *fakeResearchRepo) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrResearchNotFound
	}
	delete(r.items, id)
	return nil
}

// fakeProjectRepo keeps projects in a slice to preserve insertion order.
type fakeProjectRepo struct {
	items []*models.Project
}

func (r *fakeProjectRepo) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	p.ID = bson.NewObjectID()
	cp := *p
	r.items = append(r.items, &cp)
	return p, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id bson.ObjectID) (*models.Project, error) {
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrProjectNotFound
}

func (r *fakeProjectRepo) List(_ context.Context, owner string, filter repositories.ContentFilter) ([]models.Project, int64, error) {
	matched := []models.Project{}
	for _, p := range r.items {
		if p.Owner != owner {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		matched = append(matched, *p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ProjectDate.After(matched[j].ProjectDate) })

	total := int64(len(matched))
	if filter.Skip >= total {
		return []models.Project{}, total, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *models.Project) (*models.Project, error) {
	for i, existing := range r.items {
		if existing.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return p, nil
		}
	}
	return nil, apperrors.ErrProjectNotFound
}

func (r *fakeProjectRepo) Delete(_ context.Context, id bson.ObjectID) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrProjectNotFound
}

// fakeCertificateRepo mirrors fakeProjectRepo for certificates.
type fakeCertificateRepo struct {
	items []*models.Certificate
}

func (r *fakeCertificateRepo) Create(_ context.Context, c *models.Certificate) (*models.Certificate, error) {
	c.ID = bson.NewObjectID()
	cp := *c
	r.items = append(r.items, &cp)
	return c, nil
}

func (r *fakeCertificateRepo) GetByID(_ context.Context, id bson.ObjectID) (*models.Certificate, error) {
	for _, c := range r.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrCertificateNotFound
}

func (r *fakeCertificateRepo) List(_ context.Context, owner string, filter repositories.ContentFilter) ([]models.Certificate, int64, error) {
	matched := []models.Certificate{}
	for _, c := range r.items {
		if c.Owner != owner {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && c.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !c.Featured {
			continue
		}
		matched = append(matched, *c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].IssueDate.After(matched[j].IssueDate) })

	total := int64(len(matched))
	if filter.Skip >= total {
		return []models.Certificate{}, total, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *fakeCertificateRepo) Update(_ context.Context, c *models.Certificate) (*models.Certificate, error) {
	for i, existing := range r.items {
		if existing.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return c, nil
		}
	}
	return nil, apperrors.ErrCertificateNotFound
}

func (r *fakeCertificateRepo) Delete(_ context.Context, id bson.ObjectID) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCertificateNotFound
}

// fakeProfileRepo applies the upsert field maps to an in-memory profile.
type fakeProfileRepo struct {
	profile    *models.Profile
	failUpsert bool
}

func (r *fakeProfileRepo) GetByOwner(_ context.Context, owner string) (*models.Profile, error) {
	if r.profile == nil || r.profile.Owner != owner {
		return nil, apperrors.ErrProfileNotFound
	}
	cp := *r.profile
	return &cp, nil
}

func (r *fakeProfileRepo) UpsertFields(_ context.Context, owner string, fields bson.M) (*models.Profile, error) {
	if r.failUpsert {
		return nil, errors.New("upsert failed")
	}
	if r.profile == nil {
		r.profile = &models.Profile{Owner: owner}
	}
	for key, value := range fields {
		switch key {
		case "fullName":
			r.profile.FullName = value.(string)
		case "position":
			r.profile.Position = value.(string)
		case "bio":
			r.profile.Bio = value.(string)
		case "education":
			r.profile.Education = value.([]models.Education)
		case "about":
			r.profile.About = value.(string)
		case "philosophies":
			r.profile.Philosophies = value.([]models.Philosophy)
		case "cvUrl":
			r.profile.CvURL = value.(string)
		case "newsItems":
			r.profile.NewsItems = value.([]models.NewsItem)
		case "courses":
			r.profile.Courses = value.([]models.Course)
		case "phone":
			r.profile.Phone = value.(string)
		case "adminEmail":
			r.profile.AdminEmail = value.(string)
		case "msgEmail":
			r.profile.MsgEmail = value.(string)
		case "officeLocation":
			r.profile.OfficeLocation = value.(models.OfficeLocation)
		case "officeHours":
			r.profile.OfficeHours = value.([]models.OfficeHour)
		case "profilePicture":
			r.profile.ProfilePicture = value.(models.MediaAsset)
		}
	}
	cp := *r.profile
	return &cp, nil
}

func (r *fakeProfileRepo) PushContactMessage(_ context.Context, owner string, msg models.ContactMessage) error {
	if r.profile == nil {
		r.profile = &models.Profile{Owner: owner}
	}
	r.profile.ContactMsgs = append(r.profile.ContactMsgs, msg)
	return nil
}

func (r *fakeProfileRepo) PullContactMessage(_ context.Context, owner string, id bson.ObjectID) error {
	if r.profile == nil || r.profile.Owner != owner {
		return apperrors.NewNotFoundError("Message not found")
	}
	kept := r.profile.ContactMsgs[:0]
	found := false
	for _, msg := range r.profile.ContactMsgs {
		if msg.ID == id {
			found = true
			continue
		}
		kept = append(kept, msg)
	}
	if !found {
		return apperrors.NewNotFoundError("Message not found")
	}
	r.profile.ContactMsgs = kept
	return nil
}

// fakeNotifier records contact notifications.
type fakeNotifier struct {
	notified []models.ContactMessage
}

func (n *fakeNotifier) NotifyContactMessage(_ context.Context, msg models.ContactMessage) error {
	n.notified = append(n.notified, msg)
	return nil
}

// fakeUserRepo holds the single admin account.
type fakeUserRepo struct {
	user       *models.User
	lastLogins int
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	u.ID = bson.NewObjectID()
	cp := *u
	r.user = &cp
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *r.user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *r.user
	return &cp, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	return r.user != nil && r.user.Email == email, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ bson.ObjectID) error {
	r.lastLogins++
	return nil
}
