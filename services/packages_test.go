package services

import (
	"testing"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceRange(t *testing.T) {
	min, max, ok := parsePriceRange("100-500")
	assert.True(t, ok)
	assert.Equal(t, 100.0, min)
	assert.Equal(t, 500.0, max)

	_, _, ok = parsePriceRange("cheap")
	assert.False(t, ok)
	_, _, ok = parsePriceRange("100")
	assert.False(t, ok)
}

func TestListPackagesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := &PackagesService{DB: db}

	seed := []*models.TourPackage{
		{Title: "Beach Week", Location: "Cox's Bazar", Price: 300, Duration: "7 days"},
		{Title: "Hill Trek", Location: "Bandarban", Price: 150, Duration: "3 days"},
		{Title: "City Break", Location: "Dhaka", Price: 80, Duration: "2 days"},
	}
	for _, pkg := range seed {
		pkg.CreatedDate = time.Now()
		require.NoError(t, db.Create(pkg).Error)
	}

	// Destination substring match
	found, err := svc.ListPackages(&PackageFilter{Destination: "bazar"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Beach Week", found[0].Title)

	// Price range
	found, err = svc.ListPackages(&PackageFilter{PriceRange: "100-400"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// A malformed price range is ignored
	found, err = svc.ListPackages(&PackageFilter{PriceRange: "whatever"})
	require.NoError(t, err)
	assert.Len(t, found, 3)

	// Duration substring match
	found, err = svc.ListPackages(&PackageFilter{Duration: "3 days"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Hill Trek", found[0].Title)
}

func TestUpdatePackageClampsBookedMembers(t *testing.T) {
	db := newTestDB(t)
	svc := &PackagesService{DB: db}
	pkg := createTestPackage(t, db, 100, 10)
	pkg.BookedMembers = 8
	require.NoError(t, db.Save(pkg).Error)

	require.NoError(t, svc.UpdatePackage(pkg, 5))

	var reloaded models.TourPackage
	require.NoError(t, db.First(&reloaded, pkg.ID).Error)
	assert.Equal(t, 5, reloaded.MaxMembers)
	assert.Equal(t, 5, reloaded.BookedMembers)
}

func TestDeletePackageHidesFromListing(t *testing.T) {
	db := newTestDB(t)
	svc := &PackagesService{DB: db}
	pkg := createTestPackage(t, db, 100, 10)

	require.NoError(t, svc.DeletePackage(pkg.ID))

	found, err := svc.GetPackageByID(pkg.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	listed, err := svc.ListPackages(&PackageFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}
