package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

type ProfileUpdateReq struct {
	FullName   string `json:"full_name"`
	Age        *int64 `json:"age"`
	Gender     string `json:"gender"`
	Occupation string `json:"occupation"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Education  string `json:"education"`
}

func ProfileUpdate(
	accountsService *services.AccountsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req ProfileUpdateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Update the profile of the requesting user
		user := utils.CtxGetUser(c)
		err := accountsService.UpdateProfile(user, &services.ProfileUpdate{
			FullName:   req.FullName,
			Age:        req.Age,
			Gender:     req.Gender,
			Occupation: req.Occupation,
			Address:    req.Address,
			Phone:      req.Phone,
			Education:  req.Education,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Otherwise return something successfully
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{},
		})

	}
}
