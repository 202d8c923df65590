package services

import (
	"testing"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := &AuthTokensService{SigningPepper: "pepper"}
	user := &models.User{ID: 42}

	token, err := svc.CreateToken(user, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestTokenWrongPepperRejected(t *testing.T) {
	issuer := &AuthTokensService{SigningPepper: "pepper"}
	verifier := &AuthTokensService{SigningPepper: "other"}
	user := &models.User{ID: 42}

	token, err := issuer.CreateToken(user, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenExpiredRejected(t *testing.T) {
	svc := &AuthTokensService{SigningPepper: "pepper"}
	user := &models.User{ID: 42}

	token, err := svc.CreateToken(
		user,
		time.Now().Add(-2*time.Hour),
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	svc := &AuthTokensService{SigningPepper: "pepper"}
	_, err := svc.ParseToken("not.a.token")
	assert.Error(t, err)
}
