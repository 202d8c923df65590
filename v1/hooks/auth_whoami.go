package hooks

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

func AuthWhoAmI(
	authTokensService *services.AuthTokensService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Serialize the whoami info
		whoami, err := serializeWhoAmI(
			user,
			authTokensService,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the whoami info for this user
		c.JSON(http.StatusOK, gin.H{
			"data": whoami,
		})

	}
}

func serializeWhoAmI(
	user *models.User,
	authTokensService *services.AuthTokensService,
) (map[string]interface{}, error) {

	// Return nil if the user is nil
	if user == nil {
		return nil, errors.New("something went wrong")
	}

	// Create an authentication token for the user
	token, err := authTokensService.CreateToken(
		user,
		time.Now(),
		time.Now().Add(time.Hour*24*30),
	)
	if err != nil {
		return nil, err
	}

	// Return the map of whoami info
	return map[string]interface{}{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"display_name": user.DisplayName(),
		"is_admin":     user.IsAdmin,
		"token":        token,
	}, nil
}
