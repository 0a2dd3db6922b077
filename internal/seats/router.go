package seats

import "github.com/gin-gonic/gin"

func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	seats := router.Group("/seats")
	{
		seats.POST("/create/:tripId", controller.CreateSeats)
		seats.GET("/:tripId", controller.GetAllSeats)
		seats.GET("/:tripId/booked", controller.GetBookedSeats)
		seats.GET("/:tripId/student/:studentId", controller.GetBookingsByStudent)
		seats.GET("/:tripId/:seatNo", controller.GetSeatByNumber)
		seats.PUT("/:tripId/:seatNo", controller.UpdateSeatStatus)
		seats.PUT("/:tripId", controller.UpdateMultipleSeats)
		seats.DELETE("/:tripId", controller.DeleteAllSeats)
	}
}
