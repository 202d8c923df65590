package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatePackageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := &RatingsService{DB: db}
	user := createTestUser(t, db, "traveller", false)
	pkg := createTestPackage(t, db, 100, 10)

	_, err := svc.RatePackage(user.ID, pkg.ID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidStars)
	_, err = svc.RatePackage(user.ID, pkg.ID, 6, "")
	assert.ErrorIs(t, err, ErrInvalidStars)
}

func TestRatePackageReplacesEarlierScore(t *testing.T) {
	db := newTestDB(t)
	svc := &RatingsService{DB: db}
	user := createTestUser(t, db, "traveller", false)
	pkg := createTestPackage(t, db, 100, 10)

	first, err := svc.RatePackage(user.ID, pkg.ID, 3, "okay")
	require.NoError(t, err)
	second, err := svc.RatePackage(user.ID, pkg.ID, 5, "actually great")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	avg, count, err := svc.AverageRating(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 5.0, avg)
}

func TestAverageRating(t *testing.T) {
	db := newTestDB(t)
	svc := &RatingsService{DB: db}
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)
	pkg := createTestPackage(t, db, 100, 10)

	// No ratings yet
	avg, count, err := svc.AverageRating(pkg.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, avg)

	_, err = svc.RatePackage(alice.ID, pkg.ID, 4, "")
	require.NoError(t, err)
	_, err = svc.RatePackage(bob.ID, pkg.ID, 2, "")
	require.NoError(t, err)

	avg, count, err = svc.AverageRating(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 3.0, avg)
}
