package hooks

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

type TripSubmitReq struct {
	Destination      string `json:"destination"`
	Transport        string `json:"transport"`
	Hotel            string `json:"hotel"`
	NumberOfRooms    int    `json:"number_of_rooms"`
	RoomType         string `json:"room_type"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	People           int    `json:"people"`
	OtherPreferences string `json:"other_preferences"`
	Notes            string `json:"notes"`
}

// tripFromReq builds the trip entity from a submit or resubmit body. The
// date strings use the 2006-01-02 layout.
func tripFromReq(req *TripSubmitReq) (*models.CustomTrip, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.CustomTrip{
		Destination:      req.Destination,
		Transport:        req.Transport,
		Hotel:            req.Hotel,
		NumberOfRooms:    req.NumberOfRooms,
		RoomType:         req.RoomType,
		StartDate:        start,
		EndDate:          end,
		People:           req.People,
		OtherPreferences: req.OtherPreferences,
		Notes:            req.Notes,
	}, nil
}

func TripSubmit(
	tripsService *services.TripsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req TripSubmitReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		trip, err := tripFromReq(&req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// File the request for admin review
		trip.UserID = utils.CtxGetUser(c).ID
		if err := tripsService.SubmitTrip(trip); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the new trip request
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"id":     trip.ID,
				"status": trip.Status,
			},
		})

	}
}
