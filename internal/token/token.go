package token

import (
	"errors"
	"time"

	"collabnotes-be/internal/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the only payload a token carries. Anything else about the
// user is loaded from the store per request.
type Identity struct {
	Id    uint   `json:"id"`
	Email string `json:"email"`
}

type identityClaims struct {
	Id    uint   `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type IService interface {
	Issue(identity Identity, ttl ...time.Duration) (string, error)
	Verify(tokenStr string) (*Identity, error)
}

type service struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewService(secret string, defaultTTL time.Duration) IService {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &service{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

func (s *service) Issue(identity Identity, ttl ...time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", apperror.Configuration("jwt secret is not configured")
	}

	expiry := s.defaultTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		expiry = ttl[0]
	}

	now := time.Now()
	claims := identityClaims{
		Id:    identity.Id,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperror.Wrap(apperror.KindConfiguration, "failed to sign token", err)
	}
	return signed, nil
}

func (s *service) Verify(tokenStr string) (*Identity, error) {
	if len(s.secret) == 0 {
		return nil, apperror.Configuration("jwt secret is not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &identityClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.Unauthorized("token expired")
		}
		return nil, apperror.Unauthorized("invalid token")
	}

	claims, ok := parsed.Claims.(*identityClaims)
	if !ok || !parsed.Valid {
		return nil, apperror.Unauthorized("invalid token")
	}

	return &Identity{Id: claims.Id, Email: claims.Email}, nil
}
