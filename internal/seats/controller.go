package seats

import (
	"errors"
	"net/http"

	"unibus/internal/shared/utils/response"
	"unibus/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	CreateSeats(c *gin.Context)
	GetAllSeats(c *gin.Context)
	GetSeatByNumber(c *gin.Context)
	GetBookedSeats(c *gin.Context)
	GetBookingsByStudent(c *gin.Context)
	UpdateSeatStatus(c *gin.Context)
	UpdateMultipleSeats(c *gin.Context)
	DeleteAllSeats(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// CreateSeats initializes the 40-seat inventory for a trip. Destructive:
// existing bookings for the trip are discarded.
func (ctrl *controller) CreateSeats(c *gin.Context) {
	tripID := c.Param("tripId")

	if err := ctrl.service.Initialize(c.Request.Context(), tripID); err != nil {
		logger.GetDefault().WithError(err).Error("Error creating seats")
		response.Error(c, http.StatusInternalServerError, "Failed to create seats.")
		return
	}

	response.Message(c, http.StatusCreated, "seats created successfully!")
}

func (ctrl *controller) GetAllSeats(c *gin.Context) {
	seats, err := ctrl.service.List(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		logger.GetDefault().WithError(err).Error("Error fetching seats")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch seats.")
		return
	}
	if seats == nil {
		seats = []Seat{}
	}

	c.JSON(http.StatusOK, seats)
}

func (ctrl *controller) GetSeatByNumber(c *gin.Context) {
	seat, err := ctrl.service.GetBySeatNo(c.Request.Context(), c.Param("tripId"), c.Param("seatNo"))
	if err != nil {
		if errors.Is(err, ErrSeatNotFound) {
			response.Message(c, http.StatusNotFound, "Seat not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error fetching seat")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch seat.")
		return
	}

	c.JSON(http.StatusOK, seat)
}

func (ctrl *controller) GetBookedSeats(c *gin.Context) {
	seats, err := ctrl.service.ListBooked(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		logger.GetDefault().WithError(err).Error("Error fetching booked seats")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch booked seats.")
		return
	}
	if seats == nil {
		seats = []Seat{}
	}

	c.JSON(http.StatusOK, seats)
}

func (ctrl *controller) GetBookingsByStudent(c *gin.Context) {
	seats, err := ctrl.service.ListByStudent(c.Request.Context(), c.Param("tripId"), c.Param("studentId"))
	if err != nil {
		if errors.Is(err, ErrNoBookings) {
			response.Message(c, http.StatusNotFound, "No bookings found for this student")
			return
		}
		logger.GetDefault().WithError(err).Error("Error fetching student bookings")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch student bookings.")
		return
	}

	c.JSON(http.StatusOK, seats)
}

func (ctrl *controller) UpdateSeatStatus(c *gin.Context) {
	var req UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Booking status is required")
		return
	}

	seat, err := ctrl.service.UpdateOne(c.Request.Context(), c.Param("tripId"), c.Param("seatNo"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrStudentDetailsRequired):
			response.Message(c, http.StatusBadRequest, "Student details are required for booking")
		case errors.Is(err, ErrSeatNotFound):
			response.Message(c, http.StatusNotFound, "Seat not found")
		default:
			logger.GetDefault().WithError(err).Error("Error updating seat")
			response.Error(c, http.StatusInternalServerError, "Failed to update seat.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Seat updated successfully",
		"seat":    seat,
	})
}

func (ctrl *controller) UpdateMultipleSeats(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid seats data")
		return
	}

	seats, err := ctrl.service.UpdateMany(c.Request.Context(), c.Param("tripId"), req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, ErrStudentDetailsRequired), errors.Is(err, ErrSeatNotFound):
			// Writes that completed before the failing entry are not rolled
			// back; the error reports the first failing seat.
			response.Message(c, http.StatusBadRequest, err.Error())
		default:
			logger.GetDefault().WithError(err).Error("Error updating seats")
			response.Error(c, http.StatusInternalServerError, "Failed to update seats.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Seats updated successfully",
		"seats":   seats,
	})
}

func (ctrl *controller) DeleteAllSeats(c *gin.Context) {
	if err := ctrl.service.DeleteAll(c.Request.Context(), c.Param("tripId")); err != nil {
		logger.GetDefault().WithError(err).Error("Error deleting seats")
		response.Error(c, http.StatusInternalServerError, "Failed to delete seats.")
		return
	}

	response.Message(c, http.StatusOK, "Seats deleted successfully")
}
