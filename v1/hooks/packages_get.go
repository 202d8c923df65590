package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

type PackageGetReq struct {
	PackageID uint64 `json:"package_id"`
}

func PackageGet(
	packagesService *services.PackagesService,
	ratingsService *services.RatingsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req PackageGetReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Get the package
		pkg, err := packagesService.GetPackageByID(req.PackageID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if pkg == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}

		// Get the ratings on the package
		avg, count, err := ratingsService.AverageRating(pkg.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ratings, err := ratingsService.ListPackageRatings(pkg.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		serialized := make([]map[string]interface{}, 0, len(ratings))
		for _, rating := range ratings {
			name := ""
			if rating.User != nil {
				name = rating.User.DisplayName()
			}
			serialized = append(serialized, map[string]interface{}{
				"user":    name,
				"stars":   rating.Stars,
				"comment": rating.Comment,
			})
		}

		// Return the package detail
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"package": serializePackage(pkg, avg, count),
				"ratings": serialized,
			},
		})

	}
}
