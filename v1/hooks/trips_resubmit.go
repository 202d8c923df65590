package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

type TripResubmitReq struct {
	TripID uint64 `json:"trip_id"`
	TripSubmitReq
}

func TripResubmit(
	tripsService *services.TripsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req TripResubmitReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Resolve the user's rejected trip
		user := utils.CtxGetUser(c)
		trip, err := tripsService.GetTripByID(req.TripID, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if trip == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "custom trip not found"})
			return
		}

		// Put the revised request back in the review queue
		revised, err := tripFromReq(&req.TripSubmitReq)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := tripsService.ResubmitTrip(trip, revised); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Return the updated trip
		c.JSON(http.StatusOK, gin.H{
			"data": serializeTrip(trip),
		})

	}
}
