package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

type AdminHomeImageSetReq struct {
	Filename string `json:"filename"`
}

func AdminHomeImageSet(
	siteService *services.SiteService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminHomeImageSetReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Filename) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
			return
		}

		// Replace the home page image
		if err := siteService.SetHomeImage(req.Filename); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Otherwise return something successfully
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{},
		})

	}
}
