package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

type RatePackageReq struct {
	PackageID uint64 `json:"package_id"`
	Stars     int    `json:"stars"`
	Comment   string `json:"comment"`
}

func RatePackage(
	ratingsService *services.RatingsService,
	packagesService *services.PackagesService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req RatePackageReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Make sure the package exists
		pkg, err := packagesService.GetPackageByID(req.PackageID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if pkg == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}

		// Record the rating
		user := utils.CtxGetUser(c)
		rating, err := ratingsService.RatePackage(user.ID, pkg.ID, req.Stars, req.Comment)
		if err != nil {
			if errors.Is(err, services.ErrInvalidStars) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the recorded rating
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"id":    rating.ID,
				"stars": rating.Stars,
			},
		})

	}
}
