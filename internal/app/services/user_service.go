package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/pkg/apperrors"
	"github.com/interncompass/api/internal/pkg/auth"
	"github.com/interncompass/api/internal/pkg/helpers"
)

// UserService defines the interface for user operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByID retrieves a user's public profile by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

// ListUsers retrieves a page of user profiles
func (s *userServiceImpl) ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error) {
	page, limit = helpers.NormalizePageLimit(page, limit)

	users, total, err := s.userRepo.GetAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.FromUser(user))
	}

	return &dto.UserListResponse{
		Users:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateProfile applies a partial update to the user's own profile.
// Only fields present in the request change; email and username are
// re-checked for uniqueness when they actually change, and a new
// password is stored hashed.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && email != user.Email {
			taken, err := s.userRepo.EmailExists(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("error checking email availability: %w", err)
			}
			if taken {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != "" && username != user.Username {
			taken, err := s.userRepo.UsernameExists(ctx, username)
			if err != nil {
				return nil, fmt.Errorf("error checking username availability: %w", err)
			}
			if taken {
				return nil, apperrors.ErrUsernameAlreadyExists
			}
			user.Username = username
		}
	}

	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to hash password")
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashedPassword
	}

	if req.FullName != nil {
		user.FullName = helpers.TrimToNil(req.FullName)
	}
	if req.Bio != nil {
		user.Bio = helpers.TrimToNil(req.Bio)
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = helpers.TrimToNil(req.ProfilePicture)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Msg("User profile updated")

	resp := dto.FromUser(user)
	return &resp, nil
}
