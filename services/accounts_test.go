package services

import (
	"testing"

	"github.com/pritom1343/travelbook-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := &AccountsService{DB: db}

	user, err := svc.Register("pritom", "pritom@example.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	found, err := svc.FindByLogin("pritom@example.com", "s3cret", false)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	// Wrong password is treated as not found
	found, err = svc.FindByLogin("pritom@example.com", "wrong", false)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRegisterDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := &AccountsService{DB: db}

	_, err := svc.Register("pritom", "pritom@example.com", "s3cret")
	require.NoError(t, err)

	dup, err := svc.Register("pritom", "other@example.com", "s3cret")
	require.NoError(t, err)
	assert.Nil(t, dup)

	dup, err = svc.Register("other", "pritom@example.com", "s3cret")
	require.NoError(t, err)
	assert.Nil(t, dup)
}

func TestAdminOnlyLogin(t *testing.T) {
	db := newTestDB(t)
	svc := &AccountsService{DB: db}
	createTestUser(t, db, "traveller", false)

	// A non-admin account does not satisfy the admin login page
	found, err := svc.FindByLogin("traveller@example.com", "hunter22", true)
	require.NoError(t, err)
	assert.Nil(t, found)

	createTestUser(t, db, "boss", true)
	found, err = svc.FindByLogin("boss@example.com", "hunter22", true)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.IsAdmin)
}

func TestDeleteUserSparesAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := &AccountsService{DB: db}
	traveller := createTestUser(t, db, "traveller", false)
	admin := createTestUser(t, db, "boss", true)

	require.NoError(t, svc.DeleteUser(traveller.ID))
	found, err := svc.GetUserByID(traveller.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Admin accounts never match the delete query
	require.NoError(t, svc.DeleteUser(admin.ID))
	found, err = svc.GetUserByID(admin.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := &AccountsService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	age := int64(29)
	require.NoError(t, svc.UpdateProfile(user, &ProfileUpdate{
		FullName:   "Pritom Saha",
		Age:        &age,
		Occupation: "engineer",
	}))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "Pritom Saha", reloaded.FullName)
	assert.True(t, reloaded.Age.Valid)
	assert.Equal(t, int64(29), reloaded.Age.Int64)
	assert.Equal(t, "Pritom Saha", reloaded.DisplayName())
}
