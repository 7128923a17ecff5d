package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/app/search"
	"github.com/interncompass/api/internal/pkg/apperrors"
	"github.com/interncompass/api/internal/pkg/helpers"
	"github.com/interncompass/api/internal/pkg/logger"
)

// IInternshipRepository defines the interface for internship database operations
type IInternshipRepository interface {
	Create(ctx context.Context, internship *models.Internship) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	GetAll(ctx context.Context, page, limit int) ([]*models.Internship, int64, error)
	GetByCreator(ctx context.Context, userID int64, page, limit int) ([]*models.Internship, int64, error)
	Search(ctx context.Context, params dto.InternshipSearchRequest) ([]*models.Internship, int64, error)
	Update(ctx context.Context, internship *models.Internship) error
	Delete(ctx context.Context, id int64) error
}

// InternshipRepository handles database operations for internship listings
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

// selectInternshipQuery returns the base select in search.Columns order.
func selectInternshipQuery() squirrel.SelectBuilder {
	return squirrel.Select(search.Columns()...).
		From("internships").
		PlaceholderFormat(squirrel.Dollar)
}

// scanInternship scans a row in search.Columns order.
func scanInternship(row pgx.Row) (*models.Internship, error) {
	internship := &models.Internship{}
	err := row.Scan(
		&internship.ID, &internship.Title, &internship.Company, &internship.Description,
		&internship.Location, &internship.Remote, &internship.DurationWeeks,
		&internship.StartDate, &internship.EndDate, &internship.Salary, &internship.Currency,
		&internship.Requirements, &internship.Benefits, &internship.SkillsRequired,
		&internship.IsActive, &internship.CreatedBy, &internship.CreatedAt, &internship.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Msg("Error scanning internship row")
		return nil, err
	}
	return internship, nil
}

// Create inserts a new listing and returns the generated ID
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) (int64, error) {
	sqlStr, args, err := squirrel.Insert("internships").
		Columns("title", "company", "description", "location", "remote",
			"duration_weeks", "start_date", "end_date", "salary", "currency",
			"requirements", "benefits", "skills_required", "is_active", "created_by").
		Values(internship.Title, internship.Company, internship.Description, internship.Location,
			internship.Remote, internship.DurationWeeks, internship.StartDate, internship.EndDate,
			internship.Salary, internship.Currency, internship.Requirements, internship.Benefits,
			internship.SkillsRequired, internship.IsActive, internship.CreatedBy).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create internship SQL")
		return 0, err
	}

	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&internship.ID, &internship.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create internship query")
		return 0, err
	}

	return internship.ID, nil
}

// GetByID retrieves a single listing by its ID
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	sqlStr, args, err := selectInternshipQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get internship by ID SQL")
		return nil, err
	}

	return scanInternship(r.db.QueryRow(ctx, sqlStr, args...))
}

// GetAll retrieves a page of listings ordered by ID together with the total count
func (r *InternshipRepository) GetAll(ctx context.Context, page, limit int) ([]*models.Internship, int64, error) {
	return r.listWhere(ctx, nil, page, limit)
}

// GetByCreator retrieves the listings posted by a user
func (r *InternshipRepository) GetByCreator(ctx context.Context, userID int64, page, limit int) ([]*models.Internship, int64, error) {
	return r.listWhere(ctx, squirrel.Eq{"created_by": userID}, page, limit)
}

// listWhere runs a count plus a paginated select under the same condition.
func (r *InternshipRepository) listWhere(ctx context.Context, cond interface{}, page, limit int) ([]*models.Internship, int64, error) {
	countBuilder := squirrel.Select("count(*)").From("internships").PlaceholderFormat(squirrel.Dollar)
	dataBuilder := selectInternshipQuery()
	if cond != nil {
		countBuilder = countBuilder.Where(cond)
		dataBuilder = dataBuilder.Where(cond)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count internships SQL")
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting internships")
		return nil, 0, err
	}

	if total == 0 {
		return []*models.Internship{}, 0, nil
	}

	offset, size := helpers.CalculateOffsetLimit(page, limit)
	sqlStr, args, err := dataBuilder.
		OrderBy("id ASC").
		Limit(uint64(size)).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list internships SQL")
		return nil, 0, err
	}

	return r.queryInternships(ctx, sqlStr, args, total)
}

// Search retrieves the listings matching the given filters together with the
// total match count.
func (r *InternshipRepository) Search(ctx context.Context, params dto.InternshipSearchRequest) ([]*models.Internship, int64, error) {
	dataQuery, countQuery := search.BuildSearch(params)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building search count SQL")
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting search results")
		return nil, 0, err
	}

	if total == 0 {
		return []*models.Internship{}, 0, nil
	}

	sqlStr, args, err := dataQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building search SQL")
		return nil, 0, err
	}

	return r.queryInternships(ctx, sqlStr, args, total)
}

func (r *InternshipRepository) queryInternships(ctx context.Context, sqlStr string, args []interface{}, total int64) ([]*models.Internship, int64, error) {
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying internships")
		return nil, 0, err
	}
	defer rows.Close()

	internships := make([]*models.Internship, 0)
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, 0, err
		}
		internships = append(internships, internship)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}

// Update persists every mutable column of the listing
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	now := time.Now()
	sqlStr, args, err := squirrel.Update("internships").
		Set("title", internship.Title).
		Set("company", internship.Company).
		Set("description", internship.Description).
		Set("location", internship.Location).
		Set("remote", internship.Remote).
		Set("duration_weeks", internship.DurationWeeks).
		Set("start_date", internship.StartDate).
		Set("end_date", internship.EndDate).
		Set("salary", internship.Salary).
		Set("currency", internship.Currency).
		Set("requirements", internship.Requirements).
		Set("benefits", internship.Benefits).
		Set("skills_required", internship.SkillsRequired).
		Set("is_active", internship.IsActive).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": internship.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update internship SQL")
		return err
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update internship query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	internship.UpdatedAt = &now
	return nil
}

// Delete removes a listing. Applications pointing at it are removed by the
// ON DELETE CASCADE on applications.internship_id.
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("internships").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete internship SQL")
		return err
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete internship query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}
