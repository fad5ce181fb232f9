package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User defines an account that can sign in. In practice the collection holds
// a single admin document seeded at startup; the model still carries a role
// so the authorization gates stay explicit.
type User struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Email       string        `json:"email" bson:"email" example:"admin@university.edu"`
	Password    string        `json:"-" bson:"password"` // bcrypt hash, excluded from JSON
	Name        string        `json:"name" bson:"name" example:"Dr. Jane Doe"`
	RoleType    RoleType      `json:"roleType" bson:"roleType" example:"admin"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
	LastLoginAt *time.Time    `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.RoleType == RoleAdmin
}
