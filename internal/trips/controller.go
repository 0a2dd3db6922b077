package trips

import (
	"errors"
	"net/http"

	"unibus/internal/shared/utils/response"
	"unibus/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	CreateTrip(c *gin.Context)
	GetAllTrips(c *gin.Context)
	GetTripByID(c *gin.Context)
	GetTripsByBusID(c *gin.Context)
	UpdateTrip(c *gin.Context)
	DeleteTrip(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "All fields are required")
		return
	}

	trip, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Message(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		logger.GetDefault().WithError(err).Error("Error creating trip")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip entry created successfully",
		"newTrip": trip,
	})
}

func (ctrl *controller) GetAllTrips(c *gin.Context) {
	trips, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		logger.GetDefault().WithError(err).Error("Error fetching trips")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, trips)
}

func (ctrl *controller) GetTripByID(c *gin.Context) {
	trip, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.Message(c, http.StatusNotFound, "Trip not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error fetching trip")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (ctrl *controller) GetTripsByBusID(c *gin.Context) {
	trips, err := ctrl.service.GetByBusID(c.Request.Context(), c.Param("busID"))
	if err != nil {
		if errors.Is(err, ErrNoTripsForBus) {
			response.Message(c, http.StatusNotFound, "No trips found for this bus")
			return
		}
		logger.GetDefault().WithError(err).Error("Error fetching trips by bus ID")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, trips)
}

func (ctrl *controller) UpdateTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "All fields are required")
		return
	}

	trip, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.Message(c, http.StatusNotFound, "Trip not found")
		case errors.Is(err, ErrInvalidDate):
			response.Message(c, http.StatusBadRequest, "Invalid date format")
		default:
			logger.GetDefault().WithError(err).Error("Error updating trip")
			response.Message(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Trip updated successfully",
		"updatedTrip": trip,
	})
}

func (ctrl *controller) DeleteTrip(c *gin.Context) {
	err := ctrl.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.Message(c, http.StatusNotFound, "Trip not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error deleting trip")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Message(c, http.StatusOK, "Trip deleted successfully")
}
