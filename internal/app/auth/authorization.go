package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/pkg/apperrors"
	"github.com/interncompass/api/internal/pkg/logger"
)

// AuthorizationService handles ownership checks for mutating operations.
// Absence is always reported before ownership: a missing resource yields
// its not-found error, never a permission error.
type AuthorizationService struct {
	internshipRepo  repositories.IInternshipRepository
	applicationRepo repositories.IApplicationRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(internshipRepo repositories.IInternshipRepository, applicationRepo repositories.IApplicationRepository) *AuthorizationService {
	return &AuthorizationService{
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
	}
}

// CanModifyInternship checks if the user owns the listing
func (s *AuthorizationService) CanModifyInternship(ctx context.Context, internshipID, userID int64) (bool, error) {
	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInternshipNotFound) {
			return false, err
		}
		logger.Error().Err(err).Int64("internshipID", internshipID).Msg("Error fetching internship for ownership check")
		return false, fmt.Errorf("failed to check internship ownership: %w", err)
	}
	return internship.CreatedBy == userID, nil
}

// ValidateInternshipOwnership validates that the user owns the listing or returns an error
func (s *AuthorizationService) ValidateInternshipOwnership(ctx context.Context, internshipID, userID int64) error {
	canModify, err := s.CanModifyInternship(ctx, internshipID, userID)
	if err != nil {
		return err
	}
	if !canModify {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// CanModifyApplication checks if the user is the applicant
func (s *AuthorizationService) CanModifyApplication(ctx context.Context, applicationID, userID int64) (bool, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return false, err
		}
		logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Error fetching application for ownership check")
		return false, fmt.Errorf("failed to check application ownership: %w", err)
	}
	return application.UserID == userID, nil
}

// ValidateApplicationOwnership validates that the user is the applicant or returns an error
func (s *AuthorizationService) ValidateApplicationOwnership(ctx context.Context, applicationID, userID int64) error {
	canModify, err := s.CanModifyApplication(ctx, applicationID, userID)
	if err != nil {
		return err
	}
	if !canModify {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
