package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Course categories accepted by the profile's courses list.
const (
	CourseCategoryTechnical  = "Technical"
	CourseCategorySoftSkills = "Soft Skills"
	CourseCategoryCreative   = "Creative"
	CourseCategoryBusiness   = "Business"
)

// CourseCategories is the closed set of valid course categories.
var CourseCategories = []string{
	CourseCategoryTechnical,
	CourseCategorySoftSkills,
	CourseCategoryCreative,
	CourseCategoryBusiness,
}

// Education is a single degree entry on the profile.
type Education struct {
	Degree      string `json:"degree" bson:"degree" example:"PhD in Computer Science"`
	Institution string `json:"institution" bson:"institution" example:"MIT"`
	Year        string `json:"year" bson:"year" example:"2018"`
}

// Philosophy is a teaching-philosophy card rendered on the about section.
type Philosophy struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Order       int    `json:"order" bson:"order"`
}

// NewsItem is an announcement on the home page news feed.
type NewsItem struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Date        string        `json:"date" bson:"date" example:"2024-06-01"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
}

// Course is a completed course or training listed on the profile.
type Course struct {
	ID              bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string        `json:"title" bson:"title"`
	Platform        string        `json:"platform" bson:"platform" example:"Coursera"`
	Category        string        `json:"category" bson:"category" example:"Technical"`
	SkillsLearned   string        `json:"skillsLearned" bson:"skillsLearned"`
	CompletionDate  string        `json:"completionDate" bson:"completionDate" example:"2024-03"` // YYYY-MM
	CertificateLink string        `json:"certificateLink" bson:"certificateLink"`
}

// OfficeLocation describes where to find the admin on campus.
type OfficeLocation struct {
	Building string `json:"building" bson:"building"`
	Room     string `json:"room" bson:"room"`
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
}

// OfficeHour is a weekly availability slot.
type OfficeHour struct {
	Day           string `json:"day" bson:"day" example:"Monday"`
	Hours         string `json:"hours" bson:"hours" example:"10:00-12:00"`
	ByAppointment bool   `json:"byAppointment" bson:"byAppointment"`
}

// ContactMessage is a visitor-submitted message stored inside the profile
// document. Messages have no lifecycle of their own; the admin lists and
// deletes them through the profile sub-resources.
type ContactMessage struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	MsgEmail  string        `json:"msgEmail" bson:"msgEmail"`
	Subject   string        `json:"subject" bson:"subject"`
	Message   string        `json:"message" bson:"message"`
	Read      bool          `json:"read" bson:"read"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

// Profile is the singleton document holding everything that is not an
// independent collection: hero data, education, about, news, courses and
// contact details. It is created lazily on the first admin write.
type Profile struct {
	ID             bson.ObjectID    `json:"id" bson:"_id,omitempty"`
	Owner          string           `json:"owner" bson:"owner"`
	FullName       string           `json:"fullName" bson:"fullName"`
	AdminEmail     string           `json:"adminEmail" bson:"adminEmail"`
	MsgEmail       string           `json:"msgEmail" bson:"msgEmail"`
	ProfilePicture MediaAsset       `json:"profilePicture" bson:"profilePicture"`
	Position       string           `json:"position" bson:"position"`
	Bio            string           `json:"bio" bson:"bio"`
	Education      []Education      `json:"education" bson:"education"`
	About          string           `json:"about" bson:"about"`
	Philosophies   []Philosophy     `json:"philosophies" bson:"philosophies"`
	CvURL          string           `json:"cvUrl" bson:"cvUrl"`
	NewsItems      []NewsItem       `json:"newsItems" bson:"newsItems"`
	Courses        []Course         `json:"courses" bson:"courses"`
	Phone          string           `json:"phone" bson:"phone"`
	OfficeLocation OfficeLocation   `json:"officeLocation" bson:"officeLocation"`
	OfficeHours    []OfficeHour     `json:"officeHours" bson:"officeHours"`
	ContactMsgs    []ContactMessage `json:"contactMessages" bson:"contactMessages"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt" bson:"updatedAt"`
}
