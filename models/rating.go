package models

import "time"

// Rating is a single user's score for a tour package. One rating per user
// per package, enforced by the composite index.
type Rating struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"uniqueIndex:idx_rating_user_package"`
	User        *User
	PackageID   uint64 `gorm:"uniqueIndex:idx_rating_user_package"`
	Package     *TourPackage
	Stars       int
	Comment     string
	CreatedDate time.Time
}
