package services

import (
	"errors"
	"fmt"
	"strings"

	socketio "github.com/googollee/go-socket.io"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/utils"
)

// SocketContext is the per-connection state attached after authentication
type SocketContext struct {
	User *models.User
}

// SocketsService owns the real-time side of the support chat: connection
// authentication, room membership and message fan-out
type SocketsService struct {
	Server            *socketio.Server
	ChatService       *ChatService
	AccountsService   *AccountsService
	AuthTokensService *AuthTokensService
	sessionBuffers    *SessionMessageBuffers
}

func (s *SocketsService) Setup() {

	// Create the replay buffers
	s.sessionBuffers = NewSessionMessageBuffers(25)

	// When a socket connects, authenticate it and admit it to its rooms.
	// Connections without a valid token are rejected outright.
	s.Server.OnConnect("/", func(conn socketio.Conn) error {

		user, err := s.authenticateConn(conn)
		if err != nil {
			fmt.Println("rejected connection: ", conn.RemoteAddr().String(), err)
			return err
		}
		conn.SetContext(SocketContext{User: user})

		// Every principal gets its private room. Admins also join the
		// shared pool room.
		conn.Join(UserRoom(user.ID))
		if user.IsAdmin {
			conn.Join(AdminRoom)
		}

		fmt.Println(
			"client connected: ",
			user.Username,
			utils.GetIpAddress(conn.RemoteHeader(), conn.RemoteAddr()),
		)

		// Replay the recent messages of the user's own conversation, so a
		// second device doesn't open to an empty thread
		if !user.IsAdmin {
			if session, err := s.ChatService.GetActiveSessionForUser(user.ID); err == nil && session != nil {
				for _, payload := range s.sessionBuffers.CopyMessages(session.ID) {
					conn.Emit("receive_message", payload)
				}
			}
		}

		return nil
	})

	// When a socket disconnects
	s.Server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		fmt.Println("client disconnected: ", conn.RemoteAddr().String())
		conn.LeaveAll()
	})

	// Register all of the event handlers
	s.Server.OnEvent("/", "send_message", s.OnSendMessage)
	s.Server.OnEvent("/", "mark_messages_read", s.OnMarkMessagesRead)

}

// Broadcast broadcasts a message to every member of a room
func (s *SocketsService) Broadcast(room, event string, args ...interface{}) bool {
	return s.Server.BroadcastToRoom("/", room, event, args...)
}

// authenticateConn resolves the connecting user from the token supplied in
// the connection query string or Authorization header
func (s *SocketsService) authenticateConn(conn socketio.Conn) (*models.User, error) {

	u := conn.URL()
	token := u.Query().Get("token")
	if len(token) == 0 {
		token = strings.TrimPrefix(conn.RemoteHeader().Get("Authorization"), "Bearer ")
	}
	if len(token) == 0 {
		return nil, errors.New("missing auth token")
	}

	userID, err := s.AuthTokensService.ParseToken(token)
	if err != nil {
		return nil, errors.New("invalid auth token")
	}
	user, err := s.AccountsService.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("unknown user")
	}
	return user, nil

}

//====================================================================================================
// send_message event handler
// Called when a user or an administrator sends a chat message
//====================================================================================================

type SendMessageMsg struct {
	UserID  uint64 `json:"user_id"`
	Content string `json:"content"`
}

func (s *SocketsService) OnSendMessage(conn socketio.Conn, data SendMessageMsg) error {

	// Refuse unauthenticated senders before any lookup
	ctx, ok := conn.Context().(SocketContext)
	if !ok || ctx.User == nil {
		return errors.New("not authenticated")
	}
	sender := ctx.User

	// The target is always the user side of the conversation: admins name
	// the user they are messaging, users message their own thread
	targetUserID := sender.ID
	if sender.IsAdmin {
		target, err := s.AccountsService.GetUserByID(data.UserID)
		if err != nil {
			return err
		}
		if target == nil {
			return errors.New("user not found")
		}
		targetUserID = target.ID
	}

	// Persist the message. A nil message means the content was empty after
	// trimming and nothing should be broadcast.
	msg, err := s.ChatService.PostMessage(sender.IsAdmin, targetUserID, data.Content)
	if err != nil {
		return err
	}
	if msg == nil {
		return nil
	}

	// Fan the message out to the sender's room and the counterpart's room
	payload := serializeMessage(msg, sender.DisplayName())
	echo, notify := DeliveryRooms(sender.IsAdmin, targetUserID)
	EmitToRooms(s, echo, notify, "receive_message", payload)

	// Keep the replay buffer current. Done in a goroutine since nothing
	// waits on it.
	go s.sessionBuffers.PushMessage(msg.SessionID, payload)

	return nil

}

//====================================================================================================
// mark_messages_read event handler
// Called when an administrator opens a user's thread on the dashboard
//====================================================================================================

type MarkMessagesReadMsg struct {
	SessionID uint64 `json:"session_id"`
	UserID    uint64 `json:"user_id"`
}

func (s *SocketsService) OnMarkMessagesRead(conn socketio.Conn, data MarkMessagesReadMsg) error {

	// Only administrators mark threads read
	ctx, ok := conn.Context().(SocketContext)
	if !ok || ctx.User == nil || !ctx.User.IsAdmin {
		return errors.New("not authorized")
	}

	// Resolve the session either directly or through the target user's
	// active session
	sessionID := data.SessionID
	if sessionID == 0 {
		session, err := s.ChatService.GetActiveSessionForUser(data.UserID)
		if err != nil {
			return err
		}
		if session == nil {
			return nil
		}
		sessionID = session.ID
	}

	// Flip the user-authored unread messages. A vanished session is a
	// no-op, not an error.
	session, err := s.ChatService.MarkMessagesRead(sessionID, true)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	// Tell the user's devices to clear their unread indicators
	s.Broadcast(
		UserRoom(session.UserID),
		"messages_read",
		map[string]interface{}{"session_id": session.ID},
	)

	return nil

}

// serializeMessage builds the wire payload for a receive_message event
func serializeMessage(msg *models.ChatMessage, senderName string) map[string]interface{} {
	return map[string]interface{}{
		"message_id":  msg.ID,
		"session_id":  msg.SessionID,
		"sender_name": senderName,
		"is_admin":    msg.IsAdmin,
		"content":     msg.Content,
		"timestamp":   msg.CreatedDate.Format("2006-01-02 15:04"),
		"is_read":     msg.IsRead,
	}
}
