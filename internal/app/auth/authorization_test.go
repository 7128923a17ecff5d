package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/pkg/apperrors"
)

type fakeInternshipReader struct {
	repositories.IInternshipRepository
	internships map[int64]*models.Internship
}

func (f *fakeInternshipReader) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	internship, ok := f.internships[id]
	if !ok {
		return nil, apperrors.ErrInternshipNotFound
	}
	return internship, nil
}

type fakeApplicationReader struct {
	repositories.IApplicationRepository
	applications map[int64]*models.Application
}

func (f *fakeApplicationReader) GetByID(_ context.Context, id int64) (*models.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return application, nil
}

func newTestAuthorizationService(t *testing.T) *AuthorizationService {
	t.Helper()
	internships := &fakeInternshipReader{
		internships: map[int64]*models.Internship{
			10: {ID: 10, Title: "Backend Intern", CreatedBy: 1},
		},
	}
	applications := &fakeApplicationReader{
		applications: map[int64]*models.Application{
			20: {ID: 20, UserID: 2, InternshipID: 10},
		},
	}
	return NewAuthorizationService(internships, applications)
}

func TestValidateInternshipOwnership(t *testing.T) {
	t.Parallel()
	svc := newTestAuthorizationService(t)
	ctx := context.Background()

	if err := svc.ValidateInternshipOwnership(ctx, 10, 1); err != nil {
		t.Fatalf("owner must pass validation, got %v", err)
	}

	if err := svc.ValidateInternshipOwnership(ctx, 10, 2); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("non-owner must get permission denied, got %v", err)
	}
}

func TestValidateInternshipOwnershipMissingReportsNotFound(t *testing.T) {
	t.Parallel()
	svc := newTestAuthorizationService(t)

	// A missing listing is not-found even for a caller who owns nothing;
	// absence must never be reported as a permission problem.
	err := svc.ValidateInternshipOwnership(context.Background(), 999, 2)
	if !errors.Is(err, apperrors.ErrInternshipNotFound) {
		t.Fatalf("want ErrInternshipNotFound, got %v", err)
	}
	if errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatal("missing listing must not yield permission denied")
	}
}

func TestValidateApplicationOwnership(t *testing.T) {
	t.Parallel()
	svc := newTestAuthorizationService(t)
	ctx := context.Background()

	if err := svc.ValidateApplicationOwnership(ctx, 20, 2); err != nil {
		t.Fatalf("applicant must pass validation, got %v", err)
	}

	// The listing owner is still not the applicant
	if err := svc.ValidateApplicationOwnership(ctx, 20, 1); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("non-applicant must get permission denied, got %v", err)
	}
}

func TestValidateApplicationOwnershipMissingReportsNotFound(t *testing.T) {
	t.Parallel()
	svc := newTestAuthorizationService(t)

	err := svc.ValidateApplicationOwnership(context.Background(), 999, 2)
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Fatalf("want ErrApplicationNotFound, got %v", err)
	}
}

func TestCanModifyInternship(t *testing.T) {
	t.Parallel()
	svc := newTestAuthorizationService(t)
	ctx := context.Background()

	canModify, err := svc.CanModifyInternship(ctx, 10, 1)
	if err != nil || !canModify {
		t.Fatalf("owner: got (%v, %v), want (true, nil)", canModify, err)
	}

	canModify, err = svc.CanModifyInternship(ctx, 10, 99)
	if err != nil || canModify {
		t.Fatalf("stranger: got (%v, %v), want (false, nil)", canModify, err)
	}
}
