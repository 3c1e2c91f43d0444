package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"esgcompass/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and validates user tokens. The identity provider
// behind the credentials is deliberately opaque; here a shared access
// password stands in for it, and user IDs derive deterministically from
// the email so drafts survive re-login.
type AuthService struct {
	accessPassword string
	jwtSecret      []byte
	tokenTTL       time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(accessPassword, jwtSecret string) *AuthService {
	return &AuthService{
		accessPassword: accessPassword,
		jwtSecret:      []byte(jwtSecret),
		tokenTTL:       24 * time.Hour,
	}
}

// Login validates credentials and returns a bearer token.
func (s *AuthService) Login(email, password string) (*model.LoginResponse, error) {
	if email == "" || password != s.accessPassword {
		return nil, ErrInvalidCredentials
	}

	userID := UserIDForEmail(email)

	claims := &model.UserClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: tokenString, UserID: userID}, nil
}

// ValidateToken validates a user JWT and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserIDForEmail derives a stable user ID from an email address.
func UserIDForEmail(email string) string {
	return "u_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(email)).String()[:8]
}
