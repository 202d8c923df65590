package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableSlots(t *testing.T) {
	pkg := &TourPackage{MaxMembers: 10, BookedMembers: 4}
	assert.Equal(t, 6, pkg.AvailableSlots())

	pkg.BookedMembers = 10
	assert.Zero(t, pkg.AvailableSlots())

	// Never negative, even if the data is inconsistent
	pkg.BookedMembers = 12
	assert.Zero(t, pkg.AvailableSlots())
}

func TestSetMaxMembersClampsBooked(t *testing.T) {
	pkg := &TourPackage{MaxMembers: 10, BookedMembers: 8}

	pkg.SetMaxMembers(5)
	assert.Equal(t, 5, pkg.MaxMembers)
	assert.Equal(t, 5, pkg.BookedMembers)

	pkg.SetMaxMembers(20)
	assert.Equal(t, 20, pkg.MaxMembers)
	assert.Equal(t, 5, pkg.BookedMembers)
}
