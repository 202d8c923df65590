package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

type AdminTripsListReq struct {
	Status string `json:"status"`
}

func AdminTripsList(
	tripsService *services.TripsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminTripsListReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// List the trips in the requested state
		trips, err := tripsService.ListTripsByStatus(req.Status)
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

type AdminTripReviewReq struct {
	TripID     uint64  `json:"trip_id"`
	Approve    bool    `json:"approve"`
	Price      float64 `json:"price"`
	AdminNotes string  `json:"admin_notes"`
}

func AdminTripReview(
	tripsService *services.TripsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminTripReviewReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Get the trip under review
		trip, err := tripsService.GetTripByID(req.TripID, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if trip == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "custom trip not found"})
			return
		}

		// Record the decision
		if err := tripsService.ReviewTrip(trip, req.Approve, req.Price, req.AdminNotes); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the reviewed trip
		c.JSON(http.StatusOK, gin.H{
			"data": serializeTrip(trip),
		})

	}
}
