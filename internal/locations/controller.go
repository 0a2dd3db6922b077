package locations

import (
	"errors"
	"net/http"

	"unibus/internal/shared/utils/response"
	"unibus/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	CreateLocation(c *gin.Context)
	GetAllLocations(c *gin.Context)
	GetLocationByID(c *gin.Context)
	UpdateLocation(c *gin.Context)
	DeleteLocation(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Location is required")
		return
	}

	location, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.GetDefault().WithError(err).Error("Error creating location")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Location created successfully",
		"newLocation": location,
	})
}

func (ctrl *controller) GetAllLocations(c *gin.Context) {
	list, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		logger.GetDefault().WithError(err).Error("Error fetching locations")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (ctrl *controller) GetLocationByID(c *gin.Context) {
	location, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			response.Message(c, http.StatusNotFound, "Location not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error fetching location")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, location)
}

func (ctrl *controller) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Location is required")
		return
	}

	location, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			response.Message(c, http.StatusNotFound, "Location not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error updating location")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Location updated successfully",
		"updatedLocation": location,
	})
}

func (ctrl *controller) DeleteLocation(c *gin.Context) {
	err := ctrl.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			response.Message(c, http.StatusNotFound, "Location not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error deleting location")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Message(c, http.StatusOK, "Location deleted successfully")
}
