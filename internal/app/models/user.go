package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email          string     `json:"email" db:"email" example:"jane@example.com"`              // User's email address
	Username       string     `json:"username" db:"username" example:"janedoe"`                 // Unique username
	Password       string     `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FullName       *string    `json:"fullName,omitempty" db:"full_name" example:"Jane Doe"`     // User's display name (nullable)
	Bio            *string    `json:"bio,omitempty" db:"bio"`                                   // Short profile text (nullable)
	ProfilePicture *string    `json:"profilePicture,omitempty" db:"profile_picture"`            // URL of the user's profile picture (nullable)
	IsActive       bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the user account is active
	IsSuperuser    bool       `json:"isSuperuser" db:"is_superuser" example:"false"`            // Whether the user has admin privileges
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt      *time.Time `json:"updatedAt,omitempty" db:"updated_at"`                      // Timestamp of the last profile update (nullable)
}
