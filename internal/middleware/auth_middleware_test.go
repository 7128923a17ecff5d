package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interncompass/api/internal/app/models"
	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/pkg/apperrors"
	"github.com/interncompass/api/internal/pkg/auth"
)

func init() { gin.SetMode(gin.TestMode) }

// stubUserRepo serves the GetByID lookups the auth middleware performs
type stubUserRepo struct {
	users map[int64]*models.User
}

var _ repositories.IUserRepository = (*stubUserRepo)(nil)

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[int64]*models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return 0, errors.New("not supported")
}

func (r *stubUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (r *stubUserRepo) GetAll(ctx context.Context, page, limit int) ([]*models.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) Update(ctx context.Context, user *models.User) error { return nil }

func (r *stubUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

// authProbe records whether the protected handler ran and what it saw
type authProbe struct {
	called bool
	userID int64
	user   *models.User
}

func performAuth(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *authProbe) {
	t.Helper()

	probe := &authProbe{}
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		probe.called = true
		probe.userID, _ = CurrentUserID(c)
		probe.user, _ = CurrentUser(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, probe
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 42, Email: "jane@example.com", Username: "jane", IsActive: true}
	jwtService := newTestJWT()
	m := NewAuthMiddleware(jwtService, newStubUserRepo(user))

	token, _, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	w, probe := performAuth(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, probe.called)
	assert.Equal(t, int64(42), probe.userID)
	require.NotNil(t, probe.user)
	assert.Equal(t, "jane@example.com", probe.user.Email)
}

func TestJWTAuthAcceptsRawTokenWithoutBearerPrefix(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 5, Email: "raw@example.com", IsActive: true}
	jwtService := newTestJWT()
	m := NewAuthMiddleware(jwtService, newStubUserRepo(user))

	token, _, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	w, probe := performAuth(t, m, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, probe.called)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestJWT(), newStubUserRepo())

	w, probe := performAuth(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, probe.called)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeUnauthorized))
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestJWT(), newStubUserRepo())

	w, probe := performAuth(t, m, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, probe.called)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeInvalidToken))
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 3, Email: "late@example.com", IsActive: true}
	expiredIssuer := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})
	m := NewAuthMiddleware(newTestJWT(), newStubUserRepo(user))

	token, _, err := expiredIssuer.GenerateToken(user)
	require.NoError(t, err)

	w, probe := performAuth(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, probe.called)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeExpiredToken))
}

func TestJWTAuthRejectsTokenForMissingUser(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 77, Email: "ghost@example.com", IsActive: true}
	jwtService := newTestJWT()
	m := NewAuthMiddleware(jwtService, newStubUserRepo())

	token, _, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	w, probe := performAuth(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, probe.called)
}

func TestJWTAuthRejectsDisabledAccount(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 9, Email: "off@example.com", IsActive: false}
	jwtService := newTestJWT()
	m := NewAuthMiddleware(jwtService, newStubUserRepo(user))

	token, _, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	w, probe := performAuth(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, probe.called)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeAccountDisabled))
}
