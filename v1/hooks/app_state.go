package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

func AppState(siteService *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the home page image
		img, err := siteService.GetHomeImage()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the app state
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"home_image": img.Filename,
			},
		})

	}
}
