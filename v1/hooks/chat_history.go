package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

// ChatHistory returns the requesting user's support conversation. Opening
// the chat page creates the session, so both sides see a thread before the
// first message is sent.
func ChatHistory(
	chatService *services.ChatService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Resolve (or create) the user's session
		user := utils.CtxGetUser(c)
		session, err := chatService.GetOrCreateSession(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Get the message history
		messages, err := chatService.ListSessionMessages(session.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the thread
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"session_id": session.ID,
				"messages":   serializeThread(messages),
			},
		})

	}
}

func serializeThread(messages []*models.ChatMessage) []map[string]interface{} {
	results := make([]map[string]interface{}, 0, len(messages))
	for _, msg := range messages {
		results = append(results, map[string]interface{}{
			"message_id": msg.ID,
			"session_id": msg.SessionID,
			"is_admin":   msg.IsAdmin,
			"content":    msg.Content,
			"timestamp":  msg.CreatedDate.Format("2006-01-02 15:04"),
			"is_read":    msg.IsRead,
		})
	}
	return results
}
