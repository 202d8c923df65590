package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

func BookingsList(
	bookingsService *services.BookingsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// List the bookings for the requesting user
		user := utils.CtxGetUser(c)
		bookings, err := bookingsService.ListBookingsForUser(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Serialize and return the bookings
		results := make([]map[string]interface{}, 0, len(bookings))
		for _, booking := range bookings {
			results = append(results, serializeBooking(booking))
		}
		c.JSON(http.StatusOK, gin.H{
			"data": results,
		})

	}
}

func serializeBooking(booking *models.Booking) map[string]interface{} {
	result := map[string]interface{}{
		"id":        booking.ID,
		"reference": booking.Reference,
		"members":   booking.Members,
		"created":   booking.CreatedDate.Format("2006-01-02 15:04"),
		"cancelled": booking.CancelledDate.Valid,
	}
	if booking.Package != nil {
		result["package"] = map[string]interface{}{
			"id":    booking.Package.ID,
			"title": booking.Package.Title,
			"price": booking.Package.Price,
		}
	}
	if booking.CustomTrip != nil {
		result["custom_trip"] = map[string]interface{}{
			"id":          booking.CustomTrip.ID,
			"destination": booking.CustomTrip.Destination,
			"status":      booking.CustomTrip.Status,
		}
	}
	if booking.User != nil {
		result["user"] = map[string]interface{}{
			"id":       booking.User.ID,
			"username": booking.User.Username,
		}
	}
	return result
}
