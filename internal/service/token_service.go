package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// input, or a token past its expiry. Callers answer 401 regardless of which.
var ErrInvalidToken = errors.New("invalid or expired token")

const tokenTTL = time.Hour

type TokenService interface {
	// Issue signs the submitted claims with a fixed one-hour expiry. The
	// claims are taken as-is; gated routes expect an email claim downstream.
	Issue(claims map[string]interface{}) (string, error)
	Verify(token string) (jwt.MapClaims, error)
}

type tokenService struct{ secret []byte }

func NewTokenService(secret string) TokenService {
	return &tokenService{secret: []byte(secret)}
}

func (s *tokenService) Issue(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = time.Now().Add(tokenTTL).Unix()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
}

func (s *tokenService) Verify(token string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
