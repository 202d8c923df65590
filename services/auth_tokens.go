package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pritom1343/travelbook-api/models"
)

// AuthTokensService issues and verifies the signed bearer tokens used by
// both the HTTP API and the socket handshake
type AuthTokensService struct {
	SigningPepper string
}

// CreateToken creates a signed token for the user, valid between the two
// provided instants
func (s *AuthTokensService) CreateToken(
	user *models.User,
	issued time.Time,
	expires time.Time,
) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningPepper))
}

// ParseToken verifies a token string and returns the user id it was
// issued to
func (s *AuthTokensService) ParseToken(tokenString string) (uint64, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(s.SigningPepper), nil
		},
	)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}
	return strconv.ParseUint(claims.Subject, 10, 64)
}
