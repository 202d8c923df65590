package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
)

type PackagesListReq struct {
	Destination string `json:"destination"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
}

func PackagesList(
	packagesService *services.PackagesService,
	ratingsService *services.RatingsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req PackagesListReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// List the packages matching the filter
		packages, err := packagesService.ListPackages(&services.PackageFilter{
			Destination: req.Destination,
			PriceRange:  req.Price,
			Duration:    req.Duration,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Serialize the packages with their average ratings
		results := make([]map[string]interface{}, 0, len(packages))
		for _, pkg := range packages {
			avg, count, err := ratingsService.AverageRating(pkg.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			results = append(results, serializePackage(pkg, avg, count))
		}

		// Return the packages
		c.JSON(http.StatusOK, gin.H{
			"data": results,
		})

	}
}

func serializePackage(pkg *models.TourPackage, avgRating float64, ratingCount int64) map[string]interface{} {
	return map[string]interface{}{
		"id":                     pkg.ID,
		"title":                  pkg.Title,
		"description":            pkg.Description,
		"price":                  pkg.Price,
		"location":               pkg.Location,
		"duration":               pkg.Duration,
		"max_members":            pkg.MaxMembers,
		"available_slots":        pkg.AvailableSlots(),
		"facilities":             pkg.Facilities,
		"hotel_name":             pkg.HotelName,
		"room_type":              pkg.RoomType,
		"number_of_rooms":        pkg.NumberOfRooms,
		"transportation_details": pkg.TransportationDetails,
		"tour_type":              pkg.TourType,
		"image_filename":         pkg.ImageFilename,
		"avg_rating":             avgRating,
		"rating_count":           ratingCount,
	}
}
