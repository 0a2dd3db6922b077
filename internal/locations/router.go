package locations

import "github.com/gin-gonic/gin"

func SetupLocationRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/create-location", controller.CreateLocation)
	router.GET("/get-location", controller.GetAllLocations)
	router.GET("/get-location/:id", controller.GetLocationByID)
	router.PUT("/update-location/:id", controller.UpdateLocation)
	router.DELETE("/delete-location/:id", controller.DeleteLocation)
}
