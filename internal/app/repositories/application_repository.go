package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/pkg/apperrors"
	"github.com/interncompass/api/internal/pkg/dberrors"
	"github.com/interncompass/api/internal/pkg/helpers"
	"github.com/interncompass/api/internal/pkg/logger"
)

// IApplicationRepository defines the interface for application database operations
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByIDWithDetails(ctx context.Context, id int64) (*models.Application, error)
	GetByUser(ctx context.Context, userID int64, page, limit int) ([]*models.Application, int64, error)
	GetByInternship(ctx context.Context, internshipID int64, page, limit int) ([]*models.Application, int64, error)
	ExistsForUserAndInternship(ctx context.Context, userID, internshipID int64) (bool, error)
	Update(ctx context.Context, application *models.Application) error
	Delete(ctx context.Context, id int64) error
}

const applicationColumns = `id, user_id, internship_id, status, cover_letter, resume_url, portfolio_url, additional_info, applied_at, reviewed_at, notes`

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	application := &models.Application{}
	err := row.Scan(
		&application.ID, &application.UserID, &application.InternshipID, &application.Status,
		&application.CoverLetter, &application.ResumeURL, &application.PortfolioURL,
		&application.AdditionalInfo, &application.AppliedAt, &application.ReviewedAt, &application.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Msg("Error scanning application row")
		return nil, err
	}
	return application, nil
}

// Create inserts a new application and returns the generated ID. The status
// and applied_at columns take their defaults (pending, now).
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) (int64, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (user_id, internship_id, cover_letter, resume_url, portfolio_url, additional_info)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, applied_at`,
		application.UserID, application.InternshipID, application.CoverLetter,
		application.ResumeURL, application.PortfolioURL, application.AdditionalInfo).
		Scan(&application.ID, &application.Status, &application.AppliedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_user_internship_key") {
			return 0, apperrors.ErrDuplicateApplication
		}
		if dberrors.IsForeignKeyViolation(err) {
			// The listing was deleted between the existence check and the insert
			return 0, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Msg("Error executing create application query")
		return 0, err
	}

	return application.ID, nil
}

// GetByID retrieves a single application by its ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE id = $1`, id)
	return scanApplication(row)
}

// GetByIDWithDetails retrieves an application together with its applicant
// and listing relations.
func (r *ApplicationRepository) GetByIDWithDetails(ctx context.Context, id int64) (*models.Application, error) {
	sqlStr, args, err := squirrel.Select(
		"a.id", "a.user_id", "a.internship_id", "a.status", "a.cover_letter",
		"a.resume_url", "a.portfolio_url", "a.additional_info", "a.applied_at",
		"a.reviewed_at", "a.notes",
		"u.id", "u.email", "u.username", "u.full_name",
		"i.id", "i.title", "i.company", "i.location", "i.remote", "i.is_active",
	).From("applications a").
		Join("users u ON a.user_id = u.id").
		Join("internships i ON a.internship_id = i.id").
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get application details SQL")
		return nil, err
	}

	application := &models.Application{
		User:       &models.User{},
		Internship: &models.Internship{},
	}
	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(
		&application.ID, &application.UserID, &application.InternshipID, &application.Status,
		&application.CoverLetter, &application.ResumeURL, &application.PortfolioURL,
		&application.AdditionalInfo, &application.AppliedAt, &application.ReviewedAt, &application.Notes,
		&application.User.ID, &application.User.Email, &application.User.Username, &application.User.FullName,
		&application.Internship.ID, &application.Internship.Title, &application.Internship.Company,
		&application.Internship.Location, &application.Internship.Remote, &application.Internship.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Msg("Error scanning application details row")
		return nil, err
	}

	return application, nil
}

// GetByUser retrieves the applications submitted by a user
func (r *ApplicationRepository) GetByUser(ctx context.Context, userID int64, page, limit int) ([]*models.Application, int64, error) {
	return r.listWhere(ctx, `user_id = $1`, userID, page, limit)
}

// GetByInternship retrieves the applications submitted to a listing
func (r *ApplicationRepository) GetByInternship(ctx context.Context, internshipID int64, page, limit int) ([]*models.Application, int64, error) {
	return r.listWhere(ctx, `internship_id = $1`, internshipID, page, limit)
}

func (r *ApplicationRepository) listWhere(ctx context.Context, cond string, condArg int64, page, limit int) ([]*models.Application, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM applications WHERE `+cond, condArg).Scan(&total)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting applications")
		return nil, 0, err
	}

	if total == 0 {
		return []*models.Application{}, 0, nil
	}

	offset, size := helpers.CalculateOffsetLimit(page, limit)
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE `+cond+`
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`, condArg, size, offset)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying applications")
		return nil, 0, err
	}
	defer rows.Close()

	applications := make([]*models.Application, 0, size)
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		applications = append(applications, application)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// ExistsForUserAndInternship checks whether a user already applied to a listing
func (r *ApplicationRepository) ExistsForUserAndInternship(ctx context.Context, userID, internshipID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND internship_id = $2)`,
		userID, internshipID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update persists every mutable column of the application. The applicant,
// listing and applied_at columns are immutable.
func (r *ApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applications
		SET status = $1, cover_letter = $2, resume_url = $3, portfolio_url = $4,
		    additional_info = $5, reviewed_at = $6, notes = $7
		WHERE id = $8`,
		application.Status, application.CoverLetter, application.ResumeURL,
		application.PortfolioURL, application.AdditionalInfo, application.ReviewedAt,
		application.Notes, application.ID)

	if err != nil {
		logger.Error().Err(err).Msg("Error executing update application query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Delete removes an application
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete application query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
