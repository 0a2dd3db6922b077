package bookings

import (
	"net/http"

	"unibus/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	ConfirmBooking(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ConfirmBooking(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	conf, err := ctrl.service.Confirm(c.Request.Context(), req)
	if err != nil {
		logger.GetDefault().WithError(err).Error("Booking confirmation failed",
			"studentId", req.StudentID,
			"tripId", req.TripID,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to process booking confirmation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Booking confirmation sent successfully",
		"bookingRef": conf.BookingRef,
	})
}
