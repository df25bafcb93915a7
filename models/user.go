package models

import "time"

// User roles.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
	RoleViewer     = "viewer"
)

// User represents a staff account on the CMS.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	PasswordHash   string    `bson:"passwordHash" json:"-"`
	ProfilePicture string    `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Roles          []string  `bson:"roles" json:"roles"`
	TokenHash      string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasRole reports whether the user holds any of the given roles.
func (u *User) HasRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// UserRegistration is the payload for creating a staff account.
type UserRegistration struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"required"`
	Password       string   `json:"password" binding:"required"`
	ProfilePicture string   `json:"profilePicture"`
	Roles          []string `json:"roles"`
}

// UserUpdate carries the mutable profile fields.
type UserUpdate struct {
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	ProfilePicture string   `json:"profilePicture"`
	Roles          []string `json:"roles"`
}
