package models

import "time"

// Refund is the bookkeeping record written when a booking is cancelled.
// Payment processing happens outside this system.
type Refund struct {
	ID          uint64 `gorm:"primaryKey"`
	BookingID   uint64
	Booking     *Booking
	Amount      float64
	Reason      string
	CreatedDate time.Time
}
