package hooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

type BookingCancelReq struct {
	BookingID uint64 `json:"booking_id"`
	Reason    string `json:"reason"`
}

func BookingCancel(
	bookingsService *services.BookingsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req BookingCancelReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Cancel the booking and write the refund record
		user := utils.CtxGetUser(c)
		refund, err := bookingsService.CancelBooking(req.BookingID, user.ID, req.Reason)
		if err != nil {
			if errors.Is(err, services.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the refund bookkeeping entry
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"refund_id": refund.ID,
				"amount":    refund.Amount,
			},
		})

	}
}
