package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/auth"
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/user"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byCode map[string]user.User
	byID   map[string]user.User
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, fmt.Errorf("user not found: %w", pgx.ErrNoRows)
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return user.User{}, fmt.Errorf("user not found: %w", pgx.ErrNoRows)
}

func (s *stubUserRepo) GetByEmployeeCode(_ context.Context, code string) (user.User, error) {
	if u, ok := s.byCode[code]; ok {
		return u, nil
	}
	return user.User{}, fmt.Errorf("user not found: %w", pgx.ErrNoRows)
}

// stubJWTRepo tracks refresh tokens as the database table would: unknown
// tokens have no row, known tokens carry a revoked flag.
type stubJWTRepo struct {
	revoked map[string]bool
}

func newStubJWTRepo() *stubJWTRepo {
	return &stubJWTRepo{revoked: make(map[string]bool)}
}

func (s *stubJWTRepo) CreateRefreshToken(_ context.Context, _ string, token string, _ int64) error {
	s.revoked[token] = false
	return nil
}

func (s *stubJWTRepo) IsRefreshTokenRevoked(_ context.Context, token string) (bool, error) {
	revoked, ok := s.revoked[token]
	if !ok {
		return false, fmt.Errorf("refresh token not found: %w", pgx.ErrNoRows)
	}
	return revoked, nil
}

func (s *stubJWTRepo) RevokeRefreshToken(_ context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func seededUser(t *testing.T, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	empID := "emp-1"
	return user.User{
		ID:           "user-1",
		CompanyID:    "co-1",
		Email:        "priya@example.com",
		PasswordHash: &hashStr,
		Role:         user.RoleEmployee,
		EmployeeID:   &empID,
	}
}

func newTestAuthService(users *stubUserRepo, tokens *stubJWTRepo) (*AuthServiceImpl, jwt.Service) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	svc := NewAuthService(nil, users, jwtService, tokens).(*AuthServiceImpl)
	return svc, jwtService
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	users := &stubUserRepo{byCode: map[string]user.User{
		"EMP-0001": seededUser(t, "correct-horse"),
	}}
	svc, _ := newTestAuthService(users, newStubJWTRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "EMP-0001",
		Password:     "battery-staple",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmployeeCode(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(&stubUserRepo{}, newStubJWTRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "EMP-9999",
		Password:     "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingPasswordHash(t *testing.T) {
	t.Parallel()

	u := seededUser(t, "correct-horse")
	u.PasswordHash = nil
	users := &stubUserRepo{byCode: map[string]user.User{"EMP-0001": u}}
	svc, _ := newTestAuthService(users, newStubJWTRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "EMP-0001",
		Password:     "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_RevokedTokenRejected(t *testing.T) {
	t.Parallel()

	users := &stubUserRepo{byID: map[string]user.User{"user-1": seededUser(t, "correct-horse")}}
	tokens := newStubJWTRepo()
	svc, jwtService := newTestAuthService(users, tokens)

	refreshToken, expiresAt, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	require.NoError(t, tokens.CreateRefreshToken(context.Background(), "user-1", refreshToken, expiresAt))
	require.NoError(t, tokens.RevokeRefreshToken(context.Background(), refreshToken))

	// A rotated-out token presented again must fail closed
	_, err = svc.RefreshToken(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	t.Parallel()

	svc, jwtService := newTestAuthService(&stubUserRepo{}, newStubJWTRepo())

	empID := "emp-1"
	accessToken, _, err := jwtService.GenerateAccessToken("user-1", "priya@example.com", &empID, "co-1", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_GarbageRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(&stubUserRepo{}, newStubJWTRepo())

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_UnknownTokenRejected(t *testing.T) {
	t.Parallel()

	tokens := newStubJWTRepo()
	svc, jwtService := newTestAuthService(&stubUserRepo{}, tokens)

	// Well-formed refresh token that was never persisted
	refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	t.Parallel()

	tokens := newStubJWTRepo()
	svc, jwtService := newTestAuthService(&stubUserRepo{}, tokens)

	refreshToken, expiresAt, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	require.NoError(t, tokens.CreateRefreshToken(context.Background(), "user-1", refreshToken, expiresAt))

	require.NoError(t, svc.Logout(context.Background(), refreshToken))

	revoked, err := tokens.IsRefreshTokenRevoked(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, jwtService.IsTokenRevoked(refreshToken))
}

func TestAuthService_Logout_EmptyTokenNoop(t *testing.T) {
	t.Parallel()

	tokens := newStubJWTRepo()
	svc, _ := newTestAuthService(&stubUserRepo{}, tokens)

	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Empty(t, tokens.revoked)
}
