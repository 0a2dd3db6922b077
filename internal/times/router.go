package times

import "github.com/gin-gonic/gin"

func SetupTimeRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/create-time", controller.CreateTime)
	router.GET("/get-time", controller.GetAllTimes)
	router.GET("/get-time/:id", controller.GetTimeByID)
	router.PUT("/update-time/:id", controller.UpdateTime)
	router.DELETE("/delete-time/:id", controller.DeleteTime)
}
