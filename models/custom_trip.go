package models

import (
	"database/sql"
	"time"
)

// Custom trip request states
const (
	TripStatusPending  = "pending"
	TripStatusApproved = "approved"
	TripStatusRejected = "rejected"
)

// CustomTrip is a user-designed trip request that an administrator prices
// and approves or rejects
type CustomTrip struct {
	ID               uint64 `gorm:"primaryKey"`
	UserID           uint64
	User             *User
	Destination      string
	Transport        string
	Hotel            string
	NumberOfRooms    int
	RoomType         string
	StartDate        time.Time
	EndDate          time.Time
	People           int
	OtherPreferences string
	Notes            string `gorm:"type:text"`
	Price            sql.NullFloat64
	Status           string
	AdminNotes       string `gorm:"type:text"`
	Resubmitted      bool
	CreatedDate      time.Time
	DeletedDate      sql.NullTime
}
