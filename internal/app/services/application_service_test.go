package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/interncompass/api/internal/app/auth"
	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/pkg/apperrors"
)

type applicationFixture struct {
	svc             ApplicationService
	userRepo        *fakeUserRepo
	internshipRepo  *fakeInternshipRepo
	applicationRepo *fakeApplicationRepo

	owner      *models.User
	applicant  *models.User
	internship *models.Internship
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	internshipRepo := newFakeInternshipRepo()
	applicationRepo := newFakeApplicationRepo(userRepo, internshipRepo)
	authz := appAuth.NewAuthorizationService(internshipRepo, applicationRepo)

	owner := userRepo.add(&models.User{Email: "owner@example.com", Username: "owner", IsActive: true})
	applicant := userRepo.add(&models.User{Email: "applicant@example.com", Username: "applicant", IsActive: true})
	internship := internshipRepo.add(&models.Internship{
		Title:       "Backend Intern",
		Company:     "Acme Corp",
		Description: "Build APIs",
		Currency:    "USD",
		IsActive:    true,
		CreatedBy:   owner.ID,
	})

	return &applicationFixture{
		svc:             NewApplicationService(applicationRepo, internshipRepo, authz, zerolog.Nop()),
		userRepo:        userRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		owner:           owner,
		applicant:       applicant,
		internship:      internship,
	}
}

func (fx *applicationFixture) apply(t *testing.T) *dto.ApplicationResponse {
	t.Helper()
	resp, err := fx.svc.Apply(context.Background(), fx.applicant.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID,
	})
	require.NoError(t, err)
	return resp
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)

	resp, err := fx.svc.Apply(context.Background(), fx.applicant.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID,
		CoverLetter:  strPtr("  I would love to join.  "),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, fx.applicant.ID, resp.UserID)
	assert.Equal(t, fx.internship.ID, resp.InternshipID)
	assert.False(t, resp.AppliedAt.IsZero())
	assert.Nil(t, resp.ReviewedAt)
	require.NotNil(t, resp.CoverLetter)
	assert.Equal(t, "I would love to join.", *resp.CoverLetter)
}

func TestApplyToMissingInternship(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)

	_, err := fx.svc.Apply(context.Background(), fx.applicant.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID + 100,
	})
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestApplyToInactiveInternshipSucceeds(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	fx.internship.IsActive = false

	// Deactivated listings only disappear from search; they still take
	// applications while reachable by ID
	resp, err := fx.svc.Apply(context.Background(), fx.applicant.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, resp.Status)
}

func TestApplyTwiceIsAConflict(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	fx.apply(t)

	_, err := fx.svc.Apply(context.Background(), fx.applicant.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestApplyByDifferentUsersIsNotAConflict(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	fx.apply(t)

	other := fx.userRepo.add(&models.User{Email: "other@example.com", Username: "other", IsActive: true})
	_, err := fx.svc.Apply(context.Background(), other.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID,
	})
	assert.NoError(t, err)
}

func TestGetApplicationByIDReturnsDetails(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	resp, err := fx.svc.GetApplicationByID(context.Background(), fx.applicant.ID, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, resp.ID)
	require.NotNil(t, resp.User)
	assert.Equal(t, fx.applicant.ID, resp.User.ID)
	assert.Equal(t, "applicant", resp.User.Username)
	require.NotNil(t, resp.Internship)
	assert.Equal(t, fx.internship.ID, resp.Internship.ID)
	assert.Equal(t, "Backend Intern", resp.Internship.Title)
}

func TestGetApplicationDeniedForInternshipOwner(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	// Owning the listing grants no access to someone else's application
	_, err := fx.svc.GetApplicationByID(context.Background(), fx.owner.ID, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGetApplicationMissingReportsNotFound(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)

	_, err := fx.svc.GetApplicationByID(context.Background(), fx.owner.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestListOwnApplicationsReturnsOnlyOwn(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	other := fx.userRepo.add(&models.User{Email: "other@example.com", Username: "other", IsActive: true})
	_, err := fx.svc.Apply(context.Background(), other.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID,
	})
	require.NoError(t, err)

	resp, err := fx.svc.ListOwnApplications(context.Background(), fx.applicant.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, created.ID, resp.Applications[0].ID)
	assert.Equal(t, int64(1), resp.Pagination.TotalItems)
}

func TestListInternshipApplicationsRequiresOwnership(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	resp, err := fx.svc.ListInternshipApplications(context.Background(), fx.owner.ID, fx.internship.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, created.ID, resp.Applications[0].ID)

	_, err = fx.svc.ListInternshipApplications(context.Background(), fx.applicant.ID, fx.internship.ID, 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = fx.svc.ListInternshipApplications(context.Background(), fx.owner.ID, fx.internship.ID+100, 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestUpdateApplicationStampsReviewedAtOnce(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	reviewed, err := fx.svc.UpdateApplication(context.Background(), fx.applicant.ID, created.ID, &dto.UpdateApplicationRequest{
		Status: statusPtr(models.StatusReviewed),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusReviewed, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt, "first move away from pending must stamp reviewedAt")

	accepted, err := fx.svc.UpdateApplication(context.Background(), fx.applicant.ID, created.ID, &dto.UpdateApplicationRequest{
		Status: statusPtr(models.StatusAccepted),
	})
	require.NoError(t, err)
	require.NotNil(t, accepted.ReviewedAt)
	assert.Equal(t, *reviewed.ReviewedAt, *accepted.ReviewedAt, "reviewedAt is stamped only once")
}

func TestUpdateApplicationAllowsAnyStatusOrder(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	// Status writes are unconstrained: any valid value from any prior one
	for _, status := range []models.ApplicationStatus{
		models.StatusAccepted,
		models.StatusWithdrawn,
		models.StatusPending,
		models.StatusRejected,
	} {
		resp, err := fx.svc.UpdateApplication(context.Background(), fx.applicant.ID, created.ID, &dto.UpdateApplicationRequest{
			Status: statusPtr(status),
		})
		require.NoError(t, err, "writing status %q should succeed", status)
		assert.Equal(t, status, resp.Status)
	}
}

func TestUpdateApplicationRejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	_, err := fx.svc.UpdateApplication(context.Background(), fx.applicant.ID, created.ID, &dto.UpdateApplicationRequest{
		Status: statusPtr(models.ApplicationStatus("archived")),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestUpdateApplicationStatusOnlyKeepsOtherFields(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)

	created, err := fx.svc.Apply(context.Background(), fx.applicant.ID, &dto.CreateApplicationRequest{
		InternshipID: fx.internship.ID,
		CoverLetter:  strPtr("Original letter"),
		ResumeURL:    strPtr("https://example.com/resume.pdf"),
	})
	require.NoError(t, err)

	resp, err := fx.svc.UpdateApplication(context.Background(), fx.applicant.ID, created.ID, &dto.UpdateApplicationRequest{
		Status: statusPtr(models.StatusWithdrawn),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusWithdrawn, resp.Status)
	require.NotNil(t, resp.CoverLetter, "untouched fields must survive a partial update")
	assert.Equal(t, "Original letter", *resp.CoverLetter)
	require.NotNil(t, resp.ResumeURL)
	assert.Equal(t, "https://example.com/resume.pdf", *resp.ResumeURL)
}

func TestUpdateApplicationDeniedForInternshipOwner(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	// Even status and notes are the applicant's to write under the
	// current ownership model
	_, err := fx.svc.UpdateApplication(context.Background(), fx.owner.ID, created.ID, &dto.UpdateApplicationRequest{
		Status: statusPtr(models.StatusAccepted),
		Notes:  strPtr("Great candidate"),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	stored, getErr := fx.applicationRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdateApplicationMissingReportsNotFound(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)

	_, err := fx.svc.UpdateApplication(context.Background(), fx.applicant.ID, 999, &dto.UpdateApplicationRequest{
		Status: statusPtr(models.StatusWithdrawn),
	})
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteApplication(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	require.NoError(t, fx.svc.DeleteApplication(context.Background(), fx.applicant.ID, created.ID))

	_, err := fx.applicationRepo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestDeleteApplicationDeniedForInternshipOwner(t *testing.T) {
	t.Parallel()
	fx := newApplicationFixture(t)
	created := fx.apply(t)

	err := fx.svc.DeleteApplication(context.Background(), fx.owner.ID, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, getErr := fx.applicationRepo.GetByID(context.Background(), created.ID)
	assert.NoError(t, getErr, "application must survive a denied delete")
}
