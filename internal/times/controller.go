package times

import (
	"errors"
	"net/http"

	"unibus/internal/shared/utils/response"
	"unibus/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	CreateTime(c *gin.Context)
	GetAllTimes(c *gin.Context)
	GetTimeByID(c *gin.Context)
	UpdateTime(c *gin.Context)
	DeleteTime(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTime(c *gin.Context) {
	var req CreateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Time is required")
		return
	}

	entry, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.GetDefault().WithError(err).Error("Error creating time entry")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Time entry created successfully",
		"newTime": entry,
	})
}

func (ctrl *controller) GetAllTimes(c *gin.Context) {
	list, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		logger.GetDefault().WithError(err).Error("Error fetching time entries")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (ctrl *controller) GetTimeByID(c *gin.Context) {
	entry, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrTimeNotFound) {
			response.Message(c, http.StatusNotFound, "Time entry not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error fetching time entry")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (ctrl *controller) UpdateTime(c *gin.Context) {
	var req UpdateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Time is required")
		return
	}

	entry, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrTimeNotFound) {
			response.Message(c, http.StatusNotFound, "Time entry not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error updating time entry")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Time entry updated successfully",
		"updatedTime": entry,
	})
}

func (ctrl *controller) DeleteTime(c *gin.Context) {
	err := ctrl.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrTimeNotFound) {
			response.Message(c, http.StatusNotFound, "Time entry not found")
			return
		}
		logger.GetDefault().WithError(err).Error("Error deleting time entry")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Message(c, http.StatusOK, "Time entry deleted successfully")
}
