package dto

import (
	"time"

	"github.com/interncompass/api/internal/app/models"
)

// CreateApplicationRequest represents a new application to an internship
type CreateApplicationRequest struct {
	InternshipID   int64   `json:"internshipId" binding:"required,min=1"`
	CoverLetter    *string `json:"coverLetter,omitempty"`
	ResumeURL      *string `json:"resumeUrl,omitempty" binding:"omitempty,url"`
	PortfolioURL   *string `json:"portfolioUrl,omitempty" binding:"omitempty,url"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
}

// UpdateApplicationRequest represents a partial update of an application.
// Omitted fields are left unchanged.
type UpdateApplicationRequest struct {
	Status         *models.ApplicationStatus `json:"status,omitempty" binding:"omitempty,oneof=pending reviewed accepted rejected withdrawn"`
	CoverLetter    *string                   `json:"coverLetter,omitempty"`
	ResumeURL      *string                   `json:"resumeUrl,omitempty" binding:"omitempty,url"`
	PortfolioURL   *string                   `json:"portfolioUrl,omitempty" binding:"omitempty,url"`
	AdditionalInfo *string                   `json:"additionalInfo,omitempty"`
	Notes          *string                   `json:"notes,omitempty"`
}

// ApplicationResponse represents an application returned by the API
type ApplicationResponse struct {
	ID             int64                    `json:"id"`
	UserID         int64                    `json:"userId"`
	InternshipID   int64                    `json:"internshipId"`
	Status         models.ApplicationStatus `json:"status"`
	CoverLetter    *string                  `json:"coverLetter,omitempty"`
	ResumeURL      *string                  `json:"resumeUrl,omitempty"`
	PortfolioURL   *string                  `json:"portfolioUrl,omitempty"`
	AdditionalInfo *string                  `json:"additionalInfo,omitempty"`
	AppliedAt      time.Time                `json:"appliedAt"`
	ReviewedAt     *time.Time               `json:"reviewedAt,omitempty"`
	Notes          *string                  `json:"notes,omitempty"`
}

// FromApplication converts a models.Application to an ApplicationResponse
func FromApplication(application *models.Application) ApplicationResponse {
	if application == nil {
		return ApplicationResponse{}
	}
	return ApplicationResponse{
		ID:             application.ID,
		UserID:         application.UserID,
		InternshipID:   application.InternshipID,
		Status:         application.Status,
		CoverLetter:    application.CoverLetter,
		ResumeURL:      application.ResumeURL,
		PortfolioURL:   application.PortfolioURL,
		AdditionalInfo: application.AdditionalInfo,
		AppliedAt:      application.AppliedAt,
		ReviewedAt:     application.ReviewedAt,
		Notes:          application.Notes,
	}
}

// ApplicationDetailResponse represents an application together with the
// applicant and listing summaries
type ApplicationDetailResponse struct {
	ApplicationResponse
	User       *UserSummary       `json:"user,omitempty"`
	Internship *InternshipSummary `json:"internship,omitempty"`
}

// FromApplicationWithDetails converts an application carrying its relations
// into a detail response
func FromApplicationWithDetails(application *models.Application) ApplicationDetailResponse {
	detail := ApplicationDetailResponse{
		ApplicationResponse: FromApplication(application),
	}
	if application != nil {
		detail.User = NewUserSummary(application.User)
		detail.Internship = NewInternshipSummary(application.Internship)
	}
	return detail
}

// ApplicationListResponse represents a list of applications with pagination
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   PaginationInfo        `json:"pagination"`
}
