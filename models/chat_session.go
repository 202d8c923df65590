package models

import "time"

// ChatSession is one ongoing support conversation between a user and the
// administrator pool. Each user has at most one active session; the index
// on (UserID, Active) backs the find-or-create lookup.
type ChatSession struct {
	ID               uint64 `gorm:"primaryKey"`
	UserID           uint64 `gorm:"index:idx_session_user_active"`
	User             *User
	Active           bool `gorm:"index:idx_session_user_active"`
	CreatedDate      time.Time
	LastActivityDate time.Time
}
