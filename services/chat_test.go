package services

import (
	"testing"

	"github.com/pritom1343/travelbook-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSessionReusesActiveSession(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	first, err := svc.GetOrCreateSession(user.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.Active)
	assert.Equal(t, user.ID, first.UserID)

	second, err := svc.GetOrCreateSession(user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Exactly one active session row exists no matter how many times the
	// find-or-create path runs
	var count int64
	require.NoError(t, db.
		Model(&models.ChatSession{}).
		Where("user_id = ?", user.ID).
		Where("active = ?", true).
		Count(&count).
		Error)
	assert.Equal(t, int64(1), count)
}

func TestPostMessageFirstContact(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	// A user who never messaged before sends "Hello"
	msg, err := svc.PostMessage(false, user.ID, "Hello")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.False(t, msg.IsAdmin)
	assert.Equal(t, "Hello", msg.Content)
	assert.False(t, msg.IsRead)

	// The session was created on the fly
	session, err := svc.GetActiveSessionForUser(user.ID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, session.ID, msg.SessionID)
}

func TestPostMessageReusesSessionAndBumpsActivity(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	first, err := svc.PostMessage(false, user.ID, "Hello")
	require.NoError(t, err)
	session, err := svc.GetSessionByID(first.SessionID)
	require.NoError(t, err)
	created := session.LastActivityDate

	// An admin reply lands in the same session
	reply, err := svc.PostMessage(true, user.ID, "Hi there")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, reply.SessionID)
	assert.True(t, reply.IsAdmin)

	session, err = svc.GetSessionByID(first.SessionID)
	require.NoError(t, err)
	assert.False(t, session.LastActivityDate.Before(created))
	assert.Equal(t, reply.CreatedDate.Unix(), session.LastActivityDate.Unix())
}

func TestPostMessageEmptyContentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	msg, err := svc.PostMessage(false, user.ID, "   ")
	require.NoError(t, err)
	assert.Nil(t, msg)

	// No message row and no session either: the content check runs before
	// the session lookup
	var msgCount, sessionCount int64
	require.NoError(t, db.Model(&models.ChatMessage{}).Count(&msgCount).Error)
	require.NoError(t, db.Model(&models.ChatSession{}).Count(&sessionCount).Error)
	assert.Zero(t, msgCount)
	assert.Zero(t, sessionCount)
}

func TestPostMessageTrimsContent(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	msg, err := svc.PostMessage(false, user.ID, "  need help  \n")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "need help", msg.Content)
}

func TestUnreadAccounting(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	// Two admin-authored and three user-authored unread messages
	for i := 0; i < 2; i++ {
		_, err := svc.PostMessage(true, user.ID, "from support")
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := svc.PostMessage(false, user.ID, "from traveller")
		require.NoError(t, err)
	}
	session, err := svc.GetActiveSessionForUser(user.ID)
	require.NoError(t, err)

	// The admin sees the user-authored backlog, and vice versa
	adminUnread, err := svc.UnreadCount(session.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), adminUnread)

	userUnread, err := svc.UnreadCount(session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), userUnread)
}

func TestMarkMessagesReadFlipsCounterpartOnly(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	_, err := svc.PostMessage(false, user.ID, "question")
	require.NoError(t, err)
	_, err = svc.PostMessage(true, user.ID, "answer")
	require.NoError(t, err)
	session, err := svc.GetActiveSessionForUser(user.ID)
	require.NoError(t, err)

	// The admin opens the thread: user-authored messages flip to read,
	// the admin's own stay untouched
	resolved, err := svc.MarkMessagesRead(session.ID, true)
	require.NoError(t, err)
	require.NotNil(t, resolved)

	adminUnread, err := svc.UnreadCount(session.ID, true)
	require.NoError(t, err)
	assert.Zero(t, adminUnread)

	userUnread, err := svc.UnreadCount(session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userUnread)
}

func TestMarkMessagesReadIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	msg, err := svc.PostMessage(false, user.ID, "question")
	require.NoError(t, err)

	_, err = svc.MarkMessagesRead(msg.SessionID, true)
	require.NoError(t, err)

	// Posting more messages and marking again never flips an already-read
	// message back
	_, err = svc.PostMessage(false, user.ID, "another question")
	require.NoError(t, err)
	_, err = svc.MarkMessagesRead(msg.SessionID, true)
	require.NoError(t, err)

	var reloaded models.ChatMessage
	require.NoError(t, db.First(&reloaded, msg.ID).Error)
	assert.True(t, reloaded.IsRead)
}

func TestMarkMessagesReadMissingSessionIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}

	session, err := svc.MarkMessagesRead(12345, true)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestListActiveSessionsOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	_, err := svc.PostMessage(false, alice.ID, "first")
	require.NoError(t, err)
	_, err = svc.PostMessage(false, bob.ID, "second")
	require.NoError(t, err)

	// Alice messages again, so her thread jumps to the top
	_, err = svc.PostMessage(false, alice.ID, "me again")
	require.NoError(t, err)

	sessions, err := svc.ListActiveSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, alice.ID, sessions[0].UserID)
	assert.Equal(t, bob.ID, sessions[1].UserID)
}

func TestListSessionMessagesChronological(t *testing.T) {
	db := newTestDB(t)
	svc := &ChatService{DB: db}
	user := createTestUser(t, db, "traveller", false)

	_, err := svc.PostMessage(false, user.ID, "one")
	require.NoError(t, err)
	_, err = svc.PostMessage(true, user.ID, "two")
	require.NoError(t, err)
	session, err := svc.GetActiveSessionForUser(user.ID)
	require.NoError(t, err)

	messages, err := svc.ListSessionMessages(session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "two", messages[1].Content)
}
