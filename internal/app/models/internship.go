package models

import (
	"time"
)

// Internship defines the internship listing model based on the 'internships' table
type Internship struct {
	ID             int64      `json:"id" db:"id" example:"1"`                                        // Unique identifier for the listing
	Title          string     `json:"title" db:"title" example:"Backend Engineering Intern"`         // Position title
	Company        string     `json:"company" db:"company" example:"Acme Corp"`                      // Hiring company name
	Description    string     `json:"description" db:"description"`                                  // Full description of the position
	Location       *string    `json:"location,omitempty" db:"location" example:"Berlin"`             // Work location (nullable)
	Remote         bool       `json:"remote" db:"remote" example:"false"`                            // Whether the position is remote
	DurationWeeks  *int       `json:"durationWeeks,omitempty" db:"duration_weeks" example:"12"`      // Duration in weeks (nullable)
	StartDate      *time.Time `json:"startDate,omitempty" db:"start_date"`                           // Expected start date (nullable)
	EndDate        *time.Time `json:"endDate,omitempty" db:"end_date"`                               // Expected end date (nullable)
	Salary         *float64   `json:"salary,omitempty" db:"salary" example:"2500"`                   // Monthly compensation (nullable)
	Currency       string     `json:"currency" db:"currency" example:"USD"`                          // Compensation currency
	Requirements   *string    `json:"requirements,omitempty" db:"requirements"`                      // Requirements text (nullable)
	Benefits       *string    `json:"benefits,omitempty" db:"benefits"`                              // Benefits text (nullable)
	SkillsRequired *string    `json:"skillsRequired,omitempty" db:"skills_required" example:"Go,SQL"` // Comma-separated skill list (nullable)
	IsActive       bool       `json:"isActive" db:"is_active" example:"true"`                        // Whether the listing accepts applications
	CreatedBy      int64      `json:"createdBy" db:"created_by" example:"1"`                         // ID of the user who posted the listing
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`      // Timestamp when the listing was created
	UpdatedAt      *time.Time `json:"updatedAt,omitempty" db:"updated_at"`                           // Timestamp of the last update (nullable)
}
