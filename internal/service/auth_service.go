package service

import (
	"context"
	"errors"
	"fmt"

	"blogserver/internal/models"
	"blogserver/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Domain errors for auth flows.
var (
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token parsing.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// Register creates a new user after a duplicate pre-check on username and
// email. The password is stored as provided; login compares it by equality.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (string, error) {
	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrDuplicateUser
	}
	return s.users.Create(ctx, models.User{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Claims defines JWT claims. Tokens carry no expiry; a leaked token stays
// valid until the signing key changes.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken validates credentials and returns a signed JWT.
// Unknown user and wrong password are indistinguishable to the caller.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || u.Password != password {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(u.ID)
}

// ParseToken verifies the signature and returns the embedded user id.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: userID})
	return token.SignedString(s.signingKey)
}
