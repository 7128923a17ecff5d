package dto

import (
	"time"

	"github.com/interncompass/api/internal/app/models"
)

// CreateInternshipRequest represents a new internship listing
type CreateInternshipRequest struct {
	Title          string     `json:"title" binding:"required,min=3,max=200"`
	Company        string     `json:"company" binding:"required,min=1,max=200"`
	Description    string     `json:"description" binding:"required"`
	Location       *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	Remote         bool       `json:"remote"`
	DurationWeeks  *int       `json:"durationWeeks,omitempty" binding:"omitempty,min=1"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	Salary         *float64   `json:"salary,omitempty" binding:"omitempty,min=0"`
	Currency       *string    `json:"currency,omitempty" binding:"omitempty,len=3"`
	Requirements   *string    `json:"requirements,omitempty"`
	Benefits       *string    `json:"benefits,omitempty"`
	SkillsRequired *string    `json:"skillsRequired,omitempty"`
	IsActive       *bool      `json:"isActive,omitempty"`
}

// UpdateInternshipRequest represents a partial update of a listing. Omitted
// fields are left unchanged.
type UpdateInternshipRequest struct {
	Title          *string    `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Company        *string    `json:"company,omitempty" binding:"omitempty,min=1,max=200"`
	Description    *string    `json:"description,omitempty"`
	Location       *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	Remote         *bool      `json:"remote,omitempty"`
	DurationWeeks  *int       `json:"durationWeeks,omitempty" binding:"omitempty,min=1"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	Salary         *float64   `json:"salary,omitempty" binding:"omitempty,min=0"`
	Currency       *string    `json:"currency,omitempty" binding:"omitempty,len=3"`
	Requirements   *string    `json:"requirements,omitempty"`
	Benefits       *string    `json:"benefits,omitempty"`
	SkillsRequired *string    `json:"skillsRequired,omitempty"`
	IsActive       *bool      `json:"isActive,omitempty"`
}

// InternshipSearchRequest represents search filters for listings. Every
// filter is optional; provided filters are combined with AND.
type InternshipSearchRequest struct {
	Query     string   `form:"q"`
	Company   string   `form:"company"`
	Location  string   `form:"location"`
	Remote    *bool    `form:"remote"`
	MinSalary *float64 `form:"minSalary"`
	MaxSalary *float64 `form:"maxSalary"`
	Skills    string   `form:"skills"` // comma-separated
	Page      int      `form:"page,default=1"`
	Limit     int      `form:"limit,default=20"`
}

// InternshipResponse represents an internship listing returned by the API
type InternshipResponse struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Description    string     `json:"description"`
	Location       *string    `json:"location,omitempty"`
	Remote         bool       `json:"remote"`
	DurationWeeks  *int       `json:"durationWeeks,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	Salary         *float64   `json:"salary,omitempty"`
	Currency       string     `json:"currency"`
	Requirements   *string    `json:"requirements,omitempty"`
	Benefits       *string    `json:"benefits,omitempty"`
	SkillsRequired *string    `json:"skillsRequired,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedBy      int64      `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// FromInternship converts a models.Internship to an InternshipResponse
func FromInternship(internship *models.Internship) InternshipResponse {
	if internship == nil {
		return InternshipResponse{}
	}
	return InternshipResponse{
		ID:             internship.ID,
		Title:          internship.Title,
		Company:        internship.Company,
		Description:    internship.Description,
		Location:       internship.Location,
		Remote:         internship.Remote,
		DurationWeeks:  internship.DurationWeeks,
		StartDate:      internship.StartDate,
		EndDate:        internship.EndDate,
		Salary:         internship.Salary,
		Currency:       internship.Currency,
		Requirements:   internship.Requirements,
		Benefits:       internship.Benefits,
		SkillsRequired: internship.SkillsRequired,
		IsActive:       internship.IsActive,
		CreatedBy:      internship.CreatedBy,
		CreatedAt:      internship.CreatedAt,
		UpdatedAt:      internship.UpdatedAt,
	}
}

// InternshipSummary represents the compact listing payload embedded in
// other responses
type InternshipSummary struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Location *string `json:"location,omitempty"`
	Remote   bool    `json:"remote"`
	IsActive bool    `json:"isActive"`
}

// NewInternshipSummary converts a models.Internship to an InternshipSummary
func NewInternshipSummary(internship *models.Internship) *InternshipSummary {
	if internship == nil {
		return nil
	}
	return &InternshipSummary{
		ID:       internship.ID,
		Title:    internship.Title,
		Company:  internship.Company,
		Location: internship.Location,
		Remote:   internship.Remote,
		IsActive: internship.IsActive,
	}
}

// InternshipListResponse represents a list of internships with pagination
type InternshipListResponse struct {
	Internships []InternshipResponse `json:"internships"`
	Pagination  PaginationInfo       `json:"pagination"`
}
