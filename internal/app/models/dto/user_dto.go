package dto

import (
	"time"

	"github.com/interncompass/api/internal/app/models"
)

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	FullName       *string    `json:"fullName,omitempty"`
	Bio            *string    `json:"bio,omitempty"`
	ProfilePicture *string    `json:"profilePicture,omitempty"`
	IsActive       bool       `json:"isActive"`
	IsSuperuser    bool       `json:"isSuperuser"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		FullName:       user.FullName,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		IsActive:       user.IsActive,
		IsSuperuser:    user.IsSuperuser,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// UserSummary represents the compact user payload embedded in other responses
type UserSummary struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	FullName *string `json:"fullName,omitempty"`
}

// NewUserSummary converts a models.User to a UserSummary
func NewUserSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	}
}

// UpdateUserRequest represents a partial profile update. Omitted fields
// are left unchanged.
type UpdateUserRequest struct {
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	Username       *string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Password       *string `json:"password,omitempty" binding:"omitempty,min=8"`
	FullName       *string `json:"fullName,omitempty" binding:"omitempty,max=100"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty" binding:"omitempty,url"`
}

// UserListResponse represents a list of users with pagination
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
