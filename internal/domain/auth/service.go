package auth

import "context"

// AuthService defines authentication operations for the attendance surface
type AuthService interface {
	// Login authenticates by employee code + password and issues a token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// RefreshToken rotates a refresh token into a new token pair
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
