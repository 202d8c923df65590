package models

import "time"

// ChatMessage is one utterance in a support conversation. Messages belong
// to exactly one session and are removed with it.
type ChatMessage struct {
	ID          uint64 `gorm:"primaryKey"`
	SessionID   uint64 `gorm:"index;constraint:OnDelete:CASCADE"`
	Session     *ChatSession
	IsAdmin     bool
	Content     string `gorm:"type:text"`
	IsRead      bool
	CreatedDate time.Time
}
