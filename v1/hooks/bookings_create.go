package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

type BookingCreateReq struct {
	PackageID    uint64 `json:"package_id"`
	CustomTripID uint64 `json:"custom_trip_id"`
	Members      int    `json:"members"`
}

func BookingCreate(
	bookingsService *services.BookingsService,
	tripsService *services.TripsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req BookingCreateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user := utils.CtxGetUser(c)

		// Book either a catalogue package or an approved custom trip
		var booking *models.Booking
		var err error
		switch {
		case req.PackageID != 0:
			booking, err = bookingsService.BookPackage(user.ID, req.PackageID, req.Members)
		case req.CustomTripID != 0:
			var trip *models.CustomTrip
			trip, err = tripsService.GetTripByID(req.CustomTripID, user.ID)
			if err == nil && trip == nil {
				err = services.ErrTripNotFound
			}
			if err == nil {
				booking, err = bookingsService.BookCustomTrip(user.ID, trip)
			}
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "package_id or custom_trip_id is required"})
			return
		}
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrPackageNotFound) ||
				errors.Is(err, services.ErrNotEnoughSlots) ||
				errors.Is(err, services.ErrTripNotFound) ||
				errors.Is(err, services.ErrTripNotBookable) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// Return the new booking
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"id":        booking.ID,
				"reference": booking.Reference,
				"members":   booking.Members,
			},
		})

	}
}
