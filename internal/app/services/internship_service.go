package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	appAuth "github.com/interncompass/api/internal/app/auth"
	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/pkg/helpers"
)

// DefaultCurrency is applied when a new listing does not specify one.
const DefaultCurrency = "USD"

// InternshipService defines the interface for internship listing operations
type InternshipService interface {
	CreateInternship(ctx context.Context, userID int64, req *dto.CreateInternshipRequest) (*dto.InternshipResponse, error)
	GetInternshipByID(ctx context.Context, id int64) (*dto.InternshipResponse, error)
	ListInternships(ctx context.Context, page, limit int) (*dto.InternshipListResponse, error)
	ListOwnInternships(ctx context.Context, userID int64, page, limit int) (*dto.InternshipListResponse, error)
	SearchInternships(ctx context.Context, params *dto.InternshipSearchRequest) (*dto.InternshipListResponse, error)
	UpdateInternship(ctx context.Context, userID, id int64, req *dto.UpdateInternshipRequest) (*dto.InternshipResponse, error)
	DeleteInternship(ctx context.Context, userID, id int64) error
}

// internshipServiceImpl implements InternshipService
type internshipServiceImpl struct {
	internshipRepo repositories.IInternshipRepository
	authzService   *appAuth.AuthorizationService
	logger         zerolog.Logger
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(
	internshipRepo repositories.IInternshipRepository,
	authzService *appAuth.AuthorizationService,
	logger zerolog.Logger,
) InternshipService {
	return &internshipServiceImpl{
		internshipRepo: internshipRepo,
		authzService:   authzService,
		logger:         logger,
	}
}

// CreateInternship creates a new listing owned by the given user.
// Currency defaults to USD and new listings are active unless the
// request says otherwise.
func (s *internshipServiceImpl) CreateInternship(ctx context.Context, userID int64, req *dto.CreateInternshipRequest) (*dto.InternshipResponse, error) {
	currency := DefaultCurrency
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	internship := &models.Internship{
		Title:          strings.TrimSpace(req.Title),
		Company:        strings.TrimSpace(req.Company),
		Description:    req.Description,
		Location:       helpers.TrimToNil(req.Location),
		Remote:         req.Remote,
		DurationWeeks:  req.DurationWeeks,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Salary:         req.Salary,
		Currency:       currency,
		Requirements:   helpers.TrimToNil(req.Requirements),
		Benefits:       helpers.TrimToNil(req.Benefits),
		SkillsRequired: helpers.TrimToNil(req.SkillsRequired),
		IsActive:       isActive,
		CreatedBy:      userID,
	}

	if _, err := s.internshipRepo.Create(ctx, internship); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create internship")
		return nil, fmt.Errorf("error creating internship: %w", err)
	}

	s.logger.Info().Int64("internshipID", internship.ID).Int64("userID", userID).Msg("Internship created")

	resp := dto.FromInternship(internship)
	return &resp, nil
}

// GetInternshipByID retrieves a single listing. Inactive listings stay
// reachable by ID even though search and browse exclude them.
func (s *internshipServiceImpl) GetInternshipByID(ctx context.Context, id int64) (*dto.InternshipResponse, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromInternship(internship)
	return &resp, nil
}

// ListInternships retrieves a page of all listings
func (s *internshipServiceImpl) ListInternships(ctx context.Context, page, limit int) (*dto.InternshipListResponse, error) {
	page, limit = helpers.NormalizePageLimit(page, limit)

	internships, total, err := s.internshipRepo.GetAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}

	return s.listResponse(internships, total, page, limit), nil
}

// ListOwnInternships retrieves a page of the listings created by the user
func (s *internshipServiceImpl) ListOwnInternships(ctx context.Context, userID int64, page, limit int) (*dto.InternshipListResponse, error) {
	page, limit = helpers.NormalizePageLimit(page, limit)

	internships, total, err := s.internshipRepo.GetByCreator(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing own internships: %w", err)
	}

	return s.listResponse(internships, total, page, limit), nil
}

// SearchInternships retrieves the active listings matching every supplied
// filter
func (s *internshipServiceImpl) SearchInternships(ctx context.Context, params *dto.InternshipSearchRequest) (*dto.InternshipListResponse, error) {
	params.Page, params.Limit = helpers.NormalizePageLimit(params.Page, params.Limit)

	internships, total, err := s.internshipRepo.Search(ctx, *params)
	if err != nil {
		return nil, fmt.Errorf("error searching internships: %w", err)
	}

	return s.listResponse(internships, total, params.Page, params.Limit), nil
}

// UpdateInternship applies a partial update to a listing owned by the user.
// A missing listing reports not found before any ownership check.
func (s *internshipServiceImpl) UpdateInternship(ctx context.Context, userID, id int64, req *dto.UpdateInternshipRequest) (*dto.InternshipResponse, error) {
	if err := s.authzService.ValidateInternshipOwnership(ctx, id, userID); err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		internship.Title = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil && strings.TrimSpace(*req.Company) != "" {
		internship.Company = strings.TrimSpace(*req.Company)
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}
	if req.Location != nil {
		internship.Location = helpers.TrimToNil(req.Location)
	}
	if req.Remote != nil {
		internship.Remote = *req.Remote
	}
	if req.DurationWeeks != nil {
		internship.DurationWeeks = req.DurationWeeks
	}
	if req.StartDate != nil {
		internship.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		internship.EndDate = req.EndDate
	}
	if req.Salary != nil {
		internship.Salary = req.Salary
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		internship.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.Requirements != nil {
		internship.Requirements = helpers.TrimToNil(req.Requirements)
	}
	if req.Benefits != nil {
		internship.Benefits = helpers.TrimToNil(req.Benefits)
	}
	if req.SkillsRequired != nil {
		internship.SkillsRequired = helpers.TrimToNil(req.SkillsRequired)
	}
	if req.IsActive != nil {
		internship.IsActive = *req.IsActive
	}

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("internshipID", id).Int64("userID", userID).Msg("Internship updated")

	resp := dto.FromInternship(internship)
	return &resp, nil
}

// DeleteInternship removes a listing owned by the user together with its
// applications
func (s *internshipServiceImpl) DeleteInternship(ctx context.Context, userID, id int64) error {
	if err := s.authzService.ValidateInternshipOwnership(ctx, id, userID); err != nil {
		return err
	}

	if err := s.internshipRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("internshipID", id).Int64("userID", userID).Msg("Internship deleted")
	return nil
}

func (s *internshipServiceImpl) listResponse(internships []*models.Internship, total int64, page, limit int) *dto.InternshipListResponse {
	responses := make([]dto.InternshipResponse, 0, len(internships))
	for _, internship := range internships {
		responses = append(responses, dto.FromInternship(internship))
	}

	return &dto.InternshipListResponse{
		Internships: responses,
		Pagination:  helpers.NewPaginationInfo(total, page, limit),
	}
}
