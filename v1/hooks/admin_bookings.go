package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

func AdminBookingsList(
	bookingsService *services.BookingsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// List every booking
		bookings, err := bookingsService.ListAllBookings()
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

func AdminRefundsList(
	bookingsService *services.BookingsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// List every refund record
		refunds, err := bookingsService.ListRefunds()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Serialize and return the refunds
		results := make([]map[string]interface{}, 0, len(refunds))
		for _, refund := range refunds {
			result := map[string]interface{}{
				"id":         refund.ID,
				"booking_id": refund.BookingID,
				"amount":     refund.Amount,
				"reason":     refund.Reason,
				"created":    refund.CreatedDate.Format("2006-01-02 15:04"),
			}
			if refund.Booking != nil {
				result["reference"] = refund.Booking.Reference
			}
			results = append(results, result)
		}
		c.JSON(http.StatusOK, gin.H{
			"data": results,
		})

	}
}
