package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appAuth "github.com/interncompass/api/internal/app/auth"
	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/pkg/apperrors"
	"github.com/interncompass/api/internal/pkg/helpers"
)

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	Apply(ctx context.Context, userID int64, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	GetApplicationByID(ctx context.Context, userID, id int64) (*dto.ApplicationDetailResponse, error)
	ListOwnApplications(ctx context.Context, userID int64, page, limit int) (*dto.ApplicationListResponse, error)
	ListInternshipApplications(ctx context.Context, userID, internshipID int64, page, limit int) (*dto.ApplicationListResponse, error)
	UpdateApplication(ctx context.Context, userID, id int64, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	DeleteApplication(ctx context.Context, userID, id int64) error
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	applicationRepo repositories.IApplicationRepository
	internshipRepo  repositories.IInternshipRepository
	authzService    *appAuth.AuthorizationService
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	internshipRepo repositories.IInternshipRepository,
	authzService *appAuth.AuthorizationService,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		authzService:    authzService,
		logger:          logger,
	}
}

// Apply submits a new application for the user. The listing must exist,
// and each user can apply to a listing at most once. Inactive listings
// still accept applications since they remain addressable by ID.
func (s *applicationServiceImpl) Apply(ctx context.Context, userID int64, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if _, err := s.internshipRepo.GetByID(ctx, req.InternshipID); err != nil {
		return nil, err
	}

	exists, err := s.applicationRepo.ExistsForUserAndInternship(ctx, userID, req.InternshipID)
	if err != nil {
		return nil, fmt.Errorf("error checking for existing application: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		UserID:         userID,
		InternshipID:   req.InternshipID,
		CoverLetter:    helpers.TrimToNil(req.CoverLetter),
		ResumeURL:      helpers.TrimToNil(req.ResumeURL),
		PortfolioURL:   helpers.TrimToNil(req.PortfolioURL),
		AdditionalInfo: helpers.TrimToNil(req.AdditionalInfo),
	}

	if _, err := s.applicationRepo.Create(ctx, application); err != nil {
		// The unique constraint still backs the pre-check under races
		if apperrors.Is(err, apperrors.ErrDuplicateApplication, apperrors.ErrInternshipNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("userID", userID).Int64("internshipID", req.InternshipID).
			Msg("Failed to create application")
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	s.logger.Info().Int64("applicationID", application.ID).Int64("userID", userID).
		Int64("internshipID", req.InternshipID).Msg("Application submitted")

	resp := dto.FromApplication(application)
	return &resp, nil
}

// GetApplicationByID retrieves an application together with its applicant
// and listing summaries. Only the applicant may read it; the listing's
// owner is denied like anyone else. A missing application reports not
// found before any ownership check.
func (s *applicationServiceImpl) GetApplicationByID(ctx context.Context, userID, id int64) (*dto.ApplicationDetailResponse, error) {
	application, err := s.applicationRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if application.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}

	resp := dto.FromApplicationWithDetails(application)
	return &resp, nil
}

// ListOwnApplications retrieves a page of the user's own applications
func (s *applicationServiceImpl) ListOwnApplications(ctx context.Context, userID int64, page, limit int) (*dto.ApplicationListResponse, error) {
	page, limit = helpers.NormalizePageLimit(page, limit)

	applications, total, err := s.applicationRepo.GetByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	return listApplicationResponse(applications, total, page, limit), nil
}

// ListInternshipApplications retrieves a page of the applications submitted
// to one of the user's own listings. Individual applications stay readable
// by their applicant only; this listing view is the owner's counterpart.
func (s *applicationServiceImpl) ListInternshipApplications(ctx context.Context, userID, internshipID int64, page, limit int) (*dto.ApplicationListResponse, error) {
	if err := s.authzService.ValidateInternshipOwnership(ctx, internshipID, userID); err != nil {
		return nil, err
	}

	page, limit = helpers.NormalizePageLimit(page, limit)

	applications, total, err := s.applicationRepo.GetByInternship(ctx, internshipID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing internship applications: %w", err)
	}

	return listApplicationResponse(applications, total, page, limit), nil
}

// UpdateApplication applies a partial update to one of the user's own
// applications. Any valid status value may be written regardless of the
// current one; the first move away from pending stamps reviewed_at.
func (s *applicationServiceImpl) UpdateApplication(ctx context.Context, userID, id int64, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := s.authzService.ValidateApplicationOwnership(ctx, id, userID); err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		newStatus := *req.Status
		if !newStatus.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		if application.Status == models.StatusPending && newStatus != models.StatusPending && application.ReviewedAt == nil {
			now := time.Now()
			application.ReviewedAt = &now
		}
		application.Status = newStatus
	}

	if req.CoverLetter != nil {
		application.CoverLetter = helpers.TrimToNil(req.CoverLetter)
	}
	if req.ResumeURL != nil {
		application.ResumeURL = helpers.TrimToNil(req.ResumeURL)
	}
	if req.PortfolioURL != nil {
		application.PortfolioURL = helpers.TrimToNil(req.PortfolioURL)
	}
	if req.AdditionalInfo != nil {
		application.AdditionalInfo = helpers.TrimToNil(req.AdditionalInfo)
	}
	if req.Notes != nil {
		application.Notes = helpers.TrimToNil(req.Notes)
	}

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("applicationID", id).Int64("userID", userID).
		Str("status", string(application.Status)).Msg("Application updated")

	resp := dto.FromApplication(application)
	return &resp, nil
}

// DeleteApplication removes one of the user's own applications
func (s *applicationServiceImpl) DeleteApplication(ctx context.Context, userID, id int64) error {
	if err := s.authzService.ValidateApplicationOwnership(ctx, id, userID); err != nil {
		return err
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("applicationID", id).Int64("userID", userID).Msg("Application deleted")
	return nil
}

func listApplicationResponse(applications []*models.Application, total int64, page, limit int) *dto.ApplicationListResponse {
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, dto.FromApplication(application))
	}

	return &dto.ApplicationListResponse{
		Applications: responses,
		Pagination:   helpers.NewPaginationInfo(total, page, limit),
	}
}
