package services

import (
	"context"
	"sort"
	"time"

	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the real repositories' contract:
// copies in and out, sentinel errors for missing rows and constraint hits.

var (
	_ repositories.IUserRepository        = (*fakeUserRepo)(nil)
	_ repositories.IInternshipRepository  = (*fakeInternshipRepo)(nil)
	_ repositories.IApplicationRepository = (*fakeApplicationRepo)(nil)
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func statusPtr(s models.ApplicationStatus) *models.ApplicationStatus { return &s }

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.users[stored.ID] = &stored
	return &stored
}

func (f *fakeUserRepo) sorted() []*models.User {
	all := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if existing.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	stored := f.add(user)
	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetAll(_ context.Context, page, limit int) ([]*models.User, int64, error) {
	all := f.sorted()
	return paginate(all, page, limit), int64(len(all)), nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for id, existing := range f.users {
		if id == user.ID {
			continue
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}
	now := time.Now()
	user.UpdatedAt = &now
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeInternshipRepo struct {
	nextID      int64
	internships map[int64]*models.Internship

	searchResults []*models.Internship
	searchTotal   int64
	lastSearch    *dto.InternshipSearchRequest
}

func newFakeInternshipRepo() *fakeInternshipRepo {
	return &fakeInternshipRepo{internships: make(map[int64]*models.Internship)}
}

func (f *fakeInternshipRepo) add(internship *models.Internship) *models.Internship {
	f.nextID++
	stored := *internship
	stored.ID = f.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.internships[stored.ID] = &stored
	return &stored
}

func (f *fakeInternshipRepo) sorted() []*models.Internship {
	all := make([]*models.Internship, 0, len(f.internships))
	for _, internship := range f.internships {
		copied := *internship
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (f *fakeInternshipRepo) Create(_ context.Context, internship *models.Internship) (int64, error) {
	stored := f.add(internship)
	internship.ID = stored.ID
	internship.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (f *fakeInternshipRepo) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	internship, ok := f.internships[id]
	if !ok {
		return nil, apperrors.ErrInternshipNotFound
	}
	copied := *internship
	return &copied, nil
}

func (f *fakeInternshipRepo) GetAll(_ context.Context, page, limit int) ([]*models.Internship, int64, error) {
	all := f.sorted()
	return paginate(all, page, limit), int64(len(all)), nil
}

func (f *fakeInternshipRepo) GetByCreator(_ context.Context, userID int64, page, limit int) ([]*models.Internship, int64, error) {
	var owned []*models.Internship
	for _, internship := range f.sorted() {
		if internship.CreatedBy == userID {
			owned = append(owned, internship)
		}
	}
	return paginate(owned, page, limit), int64(len(owned)), nil
}

func (f *fakeInternshipRepo) Search(_ context.Context, params dto.InternshipSearchRequest) ([]*models.Internship, int64, error) {
	f.lastSearch = &params
	return f.searchResults, f.searchTotal, nil
}

func (f *fakeInternshipRepo) Update(_ context.Context, internship *models.Internship) error {
	if _, ok := f.internships[internship.ID]; !ok {
		return apperrors.ErrInternshipNotFound
	}
	now := time.Now()
	internship.UpdatedAt = &now
	stored := *internship
	f.internships[internship.ID] = &stored
	return nil
}

func (f *fakeInternshipRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.internships[id]; !ok {
		return apperrors.ErrInternshipNotFound
	}
	delete(f.internships, id)
	return nil
}

type fakeApplicationRepo struct {
	nextID       int64
	applications map[int64]*models.Application

	userRepo       *fakeUserRepo
	internshipRepo *fakeInternshipRepo
}

func newFakeApplicationRepo(userRepo *fakeUserRepo, internshipRepo *fakeInternshipRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications:   make(map[int64]*models.Application),
		userRepo:       userRepo,
		internshipRepo: internshipRepo,
	}
}

func (f *fakeApplicationRepo) add(application *models.Application) *models.Application {
	f.nextID++
	stored := *application
	stored.ID = f.nextID
	if stored.Status == "" {
		stored.Status = models.StatusPending
	}
	if stored.AppliedAt.IsZero() {
		stored.AppliedAt = time.Now()
	}
	f.applications[stored.ID] = &stored
	return &stored
}

func (f *fakeApplicationRepo) sorted() []*models.Application {
	all := make([]*models.Application, 0, len(f.applications))
	for _, application := range f.applications {
		copied := *application
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *models.Application) (int64, error) {
	for _, existing := range f.applications {
		if existing.UserID == application.UserID && existing.InternshipID == application.InternshipID {
			return 0, apperrors.ErrDuplicateApplication
		}
	}
	if _, ok := f.internshipRepo.internships[application.InternshipID]; !ok {
		return 0, apperrors.ErrInternshipNotFound
	}
	stored := f.add(application)
	application.ID = stored.ID
	application.Status = stored.Status
	application.AppliedAt = stored.AppliedAt
	return stored.ID, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*models.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationRepo) GetByIDWithDetails(ctx context.Context, id int64) (*models.Application, error) {
	application, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user, ok := f.userRepo.users[application.UserID]; ok {
		copied := *user
		application.User = &copied
	}
	if internship, ok := f.internshipRepo.internships[application.InternshipID]; ok {
		copied := *internship
		application.Internship = &copied
	}
	return application, nil
}

func (f *fakeApplicationRepo) GetByUser(_ context.Context, userID int64, page, limit int) ([]*models.Application, int64, error) {
	var own []*models.Application
	for _, application := range f.sorted() {
		if application.UserID == userID {
			own = append(own, application)
		}
	}
	return paginate(own, page, limit), int64(len(own)), nil
}

func (f *fakeApplicationRepo) GetByInternship(_ context.Context, internshipID int64, page, limit int) ([]*models.Application, int64, error) {
	var received []*models.Application
	for _, application := range f.sorted() {
		if application.InternshipID == internshipID {
			received = append(received, application)
		}
	}
	return paginate(received, page, limit), int64(len(received)), nil
}

func (f *fakeApplicationRepo) ExistsForUserAndInternship(_ context.Context, userID, internshipID int64) (bool, error) {
	for _, application := range f.applications {
		if application.UserID == userID && application.InternshipID == internshipID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, application *models.Application) error {
	if _, ok := f.applications[application.ID]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	stored := *application
	f.applications[application.ID] = &stored
	return nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.applications[id]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	delete(f.applications, id)
	return nil
}
