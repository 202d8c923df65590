package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

func TripsList(
	tripsService *services.TripsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// List the custom trips of the requesting user
		user := utils.CtxGetUser(c)
		trips, err := tripsService.ListTripsForUser(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Serialize and return the trips
		results := make([]map[string]interface{}, 0, len(trips))
		for _, trip := range trips {
			results = append(results, serializeTrip(trip))
		}
		c.JSON(http.StatusOK, gin.H{
			"data": results,
		})

	}
}

func serializeTrip(trip *models.CustomTrip) map[string]interface{} {
	result := map[string]interface{}{
		"id":                trip.ID,
		"destination":       trip.Destination,
		"transport":         trip.Transport,
		"hotel":             trip.Hotel,
		"number_of_rooms":   trip.NumberOfRooms,
		"room_type":         trip.RoomType,
		"start_date":        trip.StartDate.Format("2006-01-02"),
		"end_date":          trip.EndDate.Format("2006-01-02"),
		"people":            trip.People,
		"other_preferences": trip.OtherPreferences,
		"notes":             trip.Notes,
		"status":            trip.Status,
		"admin_notes":       trip.AdminNotes,
		"resubmitted":       trip.Resubmitted,
	}
	if trip.Price.Valid {
		result["price"] = trip.Price.Float64
	}
	if trip.User != nil {
		result["user"] = map[string]interface{}{
			"id":       trip.User.ID,
			"username": trip.User.Username,
		}
	}
	return result
}
