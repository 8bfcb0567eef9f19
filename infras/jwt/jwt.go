package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"borrowdung/config"
	"borrowdung/shared/constant"
	"borrowdung/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims is the payload of the signed session cookie. It only names the
// session; the access token issued by the booking API never leaves the server.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session cookies.
type JWT interface {
	NewSession() (sessionID, cookie string, err error)
	ParseSession(cookie string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	config *config.Config
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// NewSession issues a fresh session id and the signed cookie value naming it.
func (s *Service) NewSession() (string, string, error) {
	sessionID := uuid.NewString()
	now := timezone.Now()

	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			ID:        uuid.NewString(),
		},
	}

	if ttl := s.config.Session.TTLSeconds; ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(ttl) * time.Second))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret())
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return sessionID, signed, nil
}

// ParseSession validates a cookie value produced by NewSession.
func (s *Service) ParseSession(cookie string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(cookie, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret(), nil
	}, jwt.WithIssuer(s.config.App.Name))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.SessionID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) secret() []byte {
	return []byte(s.config.JWT.SessionSecret)
}

// BearerToken formats an access token for the Authorization header.
func BearerToken(accessToken string) string {
	return constant.AuthorizationBearerPrefix + accessToken
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	if !strings.HasPrefix(authHeader, constant.AuthorizationBearerPrefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return strings.TrimPrefix(authHeader, constant.AuthorizationBearerPrefix), nil
}
