// Package search builds the filtered listing queries for internship search.
package search

import (
	"github.com/Masterminds/squirrel"

	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/pkg/helpers"
)

// internshipColumns is the select list for internship rows. The repository
// scan order must match.
var internshipColumns = []string{
	"id", "title", "company", "description", "location", "remote",
	"duration_weeks", "start_date", "end_date", "salary", "currency",
	"requirements", "benefits", "skills_required", "is_active",
	"created_by", "created_at", "updated_at",
}

// Columns returns the internship select list in scan order.
func Columns() []string {
	return internshipColumns
}

// conditions translates the optional filters into a single conjunction.
// Only active listings are searchable; every provided filter narrows the
// result further.
func conditions(params dto.InternshipSearchRequest) squirrel.And {
	conds := squirrel.And{squirrel.Eq{"is_active": true}}

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"company": pattern},
		})
	}
	if params.Company != "" {
		conds = append(conds, squirrel.ILike{"company": "%" + params.Company + "%"})
	}
	if params.Location != "" {
		conds = append(conds, squirrel.ILike{"location": "%" + params.Location + "%"})
	}
	if params.Remote != nil {
		conds = append(conds, squirrel.Eq{"remote": *params.Remote})
	}
	if params.MinSalary != nil {
		conds = append(conds, squirrel.GtOrEq{"salary": *params.MinSalary})
	}
	if params.MaxSalary != nil {
		conds = append(conds, squirrel.LtOrEq{"salary": *params.MaxSalary})
	}
	// One conjunct per requested skill, so a listing must carry all of them.
	for _, skill := range helpers.SplitCSV(params.Skills) {
		conds = append(conds, squirrel.ILike{"skills_required": "%" + skill + "%"})
	}

	return conds
}

// BuildSearch returns the data and count queries for the given filters.
// The data query is ordered by id for a stable page sequence and paginated
// from the 1-based page number.
func BuildSearch(params dto.InternshipSearchRequest) (dataQuery, countQuery squirrel.SelectBuilder) {
	conds := conditions(params)
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)

	dataQuery = squirrel.Select(internshipColumns...).
		From("internships").
		Where(conds).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	countQuery = squirrel.Select("count(*)").
		From("internships").
		Where(conds).
		PlaceholderFormat(squirrel.Dollar)

	return dataQuery, countQuery
}
