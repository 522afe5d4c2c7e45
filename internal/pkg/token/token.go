package token

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
)

// Service mints and verifies the signed caller-identity tokens the
// portal front door attaches to every request. Credential verification
// itself happens elsewhere; this layer only carries the resolved
// identity claims.
type Service interface {
	GenerateIdentityToken(ident identity.Identity) (token string, expiresAt int64, err error)
	TokenAuth() *jwtauth.JWTAuth
}

type tokenService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewService(secretKey string, expirationTime string) Service {
	return &tokenService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *tokenService) TokenAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *tokenService) GenerateIdentityToken(ident identity.Identity) (string, int64, error) {
	expDuration, err := time.ParseDuration(s.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"identity_id": ident.ID,
		"name":        ident.Name,
		"username":    ident.Username,
		"role":        string(ident.Role),
		"type":        "identity",
		"exp":         expiresAt,
	}

	_, tokenString, err := s.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
