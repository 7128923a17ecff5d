package models

import (
	"time"
)

// Application defines the application model based on the 'applications' table
type Application struct {
	ID             int64             `json:"id" db:"id" example:"1"`                                   // Unique identifier for the application
	UserID         int64             `json:"userId" db:"user_id" example:"1"`                          // ID of the applicant
	InternshipID   int64             `json:"internshipId" db:"internship_id" example:"1"`              // ID of the internship applied to
	Status         ApplicationStatus `json:"status" db:"status" example:"pending"`                     // Current lifecycle status
	CoverLetter    *string           `json:"coverLetter,omitempty" db:"cover_letter"`                  // Cover letter text (nullable)
	ResumeURL      *string           `json:"resumeUrl,omitempty" db:"resume_url"`                      // Link to the applicant's resume (nullable)
	PortfolioURL   *string           `json:"portfolioUrl,omitempty" db:"portfolio_url"`                // Link to the applicant's portfolio (nullable)
	AdditionalInfo *string           `json:"additionalInfo,omitempty" db:"additional_info"`            // Free-form extra information (nullable)
	AppliedAt      time.Time         `json:"appliedAt" db:"applied_at" example:"2024-01-05T09:00:00Z"` // Timestamp when the application was submitted
	ReviewedAt     *time.Time        `json:"reviewedAt,omitempty" db:"reviewed_at"`                    // Timestamp of the first review (nullable)
	Notes          *string           `json:"notes,omitempty" db:"notes"`                               // Reviewer notes (nullable)
	User           *User             `json:"user,omitempty"`                                           // Relation, no db tag
	Internship     *Internship       `json:"internship,omitempty"`                                     // Relation, no db tag
}
