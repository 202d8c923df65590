package models

import (
	"database/sql"
	"time"
)

// TourPackage is a tour offered by the agency, with a fixed number of
// bookable member slots
type TourPackage struct {
	ID                     uint64 `gorm:"primaryKey"`
	Title                  string
	Description            string `gorm:"type:text"`
	Price                  float64
	Location               string
	Duration               string
	MaxMembers             int
	BookedMembers          int
	Facilities             string
	HotelName              string
	RoomType               string
	NumberOfRooms          int
	TransportationDetails  string
	TourType               string
	ImageFilename          string
	CreatedDate            time.Time
	DeletedDate            sql.NullTime
}

// AvailableSlots is the number of member slots still open on the package
func (p *TourPackage) AvailableSlots() int {
	if p.MaxMembers <= p.BookedMembers {
		return 0
	}
	return p.MaxMembers - p.BookedMembers
}

// SetMaxMembers updates the member cap. If the cap drops below the number
// already booked, the booked count is clamped down to the new cap.
func (p *TourPackage) SetMaxMembers(newMax int) {
	if newMax < p.BookedMembers {
		p.BookedMembers = newMax
	}
	p.MaxMembers = newMax
}
