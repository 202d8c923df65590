package services

import (
	"errors"
	"strings"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"gorm.io/gorm"
)

// ChatService manages support chat sessions and messages. Fan-out to live
// connections is handled by the SocketsService; this service only touches
// the database.
type ChatService struct {
	DB *gorm.DB
}

// GetOrCreateSession finds the active chat session for a user, creating
// one if none exists. The lookup and insert run in one transaction so two
// racing first messages cannot both create a session.
func (s *ChatService) GetOrCreateSession(userID uint64) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ?", userID).
			Where("active = ?", true).
			First(&session).
			Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		now := time.Now()
		session = models.ChatSession{
			UserID:           userID,
			Active:           true,
			CreatedDate:      now,
			LastActivityDate: now,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetActiveSessionForUser gets the active session for a user without
// creating one, returning nil when the user has never chatted
func (s *ChatService) GetActiveSessionForUser(userID uint64) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.DB.
		Where("user_id = ?", userID).
		Where("active = ?", true).
		First(&session).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// GetSessionByID gets a chat session by its primary key
func (s *ChatService) GetSessionByID(sessionID uint64) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.DB.First(&session, sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// PostMessage persists a chat message into the conversation of the target
// user, resolving (or creating) the session and bumping its last-activity
// timestamp. Content that is empty after trimming is dropped without a
// session lookup; the returned message is nil in that case.
func (s *ChatService) PostMessage(
	senderIsAdmin bool,
	targetUserID uint64,
	content string,
) (*models.ChatMessage, error) {

	// An all-whitespace payload is dropped outright
	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return nil, nil
	}

	// Resolve the conversation for the target user
	session, err := s.GetOrCreateSession(targetUserID)
	if err != nil {
		return nil, err
	}

	// Persist the message
	msg := models.ChatMessage{
		SessionID:   session.ID,
		IsAdmin:     senderIsAdmin,
		Content:     content,
		IsRead:      false,
		CreatedDate: time.Now(),
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}

	// Bump the session activity timestamp
	err = s.DB.
		Model(&models.ChatSession{}).
		Where("id = ?", session.ID).
		Update("last_activity_date", msg.CreatedDate).
		Error
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// MarkMessagesRead flips the read flag on every unread message in the
// session that was authored by the counterpart of the viewer. It returns
// the resolved session, or nil when the session does not exist (a no-op,
// not an error).
func (s *ChatService) MarkMessagesRead(
	sessionID uint64,
	viewerIsAdmin bool,
) (*models.ChatSession, error) {

	session, err := s.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	// An admin viewer reads user-authored messages, and vice versa
	err = s.DB.
		Model(&models.ChatMessage{}).
		Where("session_id = ?", session.ID).
		Where("is_admin = ?", !viewerIsAdmin).
		Where("is_read = ?", false).
		Update("is_read", true).
		Error
	if err != nil {
		return nil, err
	}
	return session, nil
}

// UnreadCount counts the messages in a session that the viewer has not
// read yet, i.e. unread messages authored by the counterpart role
func (s *ChatService) UnreadCount(sessionID uint64, viewerIsAdmin bool) (int64, error) {
	var count int64
	err := s.DB.
		Model(&models.ChatMessage{}).
		Where("session_id = ?", sessionID).
		Where("is_admin = ?", !viewerIsAdmin).
		Where("is_read = ?", false).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListActiveSessions lists every active session, most recently active
// first. Used by the admin support dashboard.
func (s *ChatService) ListActiveSessions() ([]*models.ChatSession, error) {
	var sessions []*models.ChatSession
	err := s.DB.
		Preload("User").
		Where("active = ?", true).
		Order("last_activity_date DESC").
		Find(&sessions).
		Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListSessionMessages returns the full message history of a session in
// chronological order
func (s *ChatService) ListSessionMessages(sessionID uint64) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := s.DB.
		Where("session_id = ?", sessionID).
		Order("created_date ASC").
		Find(&messages).
		Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
