package bookings

import "github.com/gin-gonic/gin"

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/confirm-booking", controller.ConfirmBooking)
}
