package trips

import "github.com/gin-gonic/gin"

func SetupTripRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/create-trip", controller.CreateTrip)
	router.GET("/get-trip", controller.GetAllTrips)
	router.GET("/get-trip/:id", controller.GetTripByID)
	router.GET("/get-trip/bus/:busID", controller.GetTripsByBusID)
	router.PUT("/update-trip/:id", controller.UpdateTrip)
	router.DELETE("/delete-trip/:id", controller.DeleteTrip)
}
