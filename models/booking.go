package models

import (
	"database/sql"
	"time"
)

// Booking reserves member slots on a tour package, or confirms an approved
// custom trip. Exactly one of PackageID and CustomTripID is set.
type Booking struct {
	ID            uint64 `gorm:"primaryKey"`
	Reference     string `gorm:"uniqueIndex"`
	UserID        uint64
	User          *User
	PackageID     sql.NullInt64
	Package       *TourPackage
	CustomTripID  sql.NullInt64
	CustomTrip    *CustomTrip
	Members       int
	CreatedDate   time.Time
	CancelledDate sql.NullTime
}
