package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

// AdminChatSessions lists the active support conversations for the admin
// dashboard, most recently active first, each with the admin-facing unread
// count for its badge
func AdminChatSessions(
	chatService *services.ChatService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// List the active sessions
		sessions, err := chatService.ListActiveSessions()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Serialize the sessions with their unread badges
		results := make([]map[string]interface{}, 0, len(sessions))
		for _, session := range sessions {
			unread, err := chatService.UnreadCount(session.ID, true)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			result := map[string]interface{}{
				"session_id":    session.ID,
				"user_id":       session.UserID,
				"last_activity": session.LastActivityDate.Format("2006-01-02 15:04"),
				"unread":        unread,
			}
			if session.User != nil {
				result["user_name"] = session.User.DisplayName()
			}
			results = append(results, result)
		}
		c.JSON(http.StatusOK, gin.H{
			"data": results,
		})

	}
}

type AdminChatThreadReq struct {
	UserID uint64 `json:"user_id"`
}

// AdminChatThread opens a user's conversation from the dashboard. The
// session is created if the user has never chatted, so the admin can send
// the first message.
func AdminChatThread(
	chatService *services.ChatService,
	accountsService *services.AccountsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminChatThreadReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Make sure the user exists before opening a thread for them
		user, err := accountsService.GetUserByID(req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		// Resolve (or create) the session and get its history
		session, err := chatService.GetOrCreateSession(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		messages, err := chatService.ListSessionMessages(session.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the thread
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"session_id": session.ID,
				"user_name":  user.DisplayName(),
				"messages":   serializeThread(messages),
			},
		})

	}
}
