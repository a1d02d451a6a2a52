package handlers

import (
	"errors"
	"log"
	request "pestpro_ops/internal/adapter/http/dto/request"
	response "pestpro_ops/internal/adapter/http/dto/response"
	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/usecase"
	"pestpro_ops/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidTimeclockPayload = pkg.NewDomainErrorSimple("INVALID_TIMECLOCK_INPUT", "Invalid time clock payload", http.StatusBadRequest)

// TimeclockHandler handles time-clock actions from the employee app.

type TimeclockHandler struct {
	usecase usecase.ITimeclockUseCase
}

func NewTimeclockHandler(uc usecase.ITimeclockUseCase) *TimeclockHandler {
	return &TimeclockHandler{usecase: uc}
}

// RecordEvent appends one time-clock event, lazily creating the day's shift
// on the first clock_in.
func (h *TimeclockHandler) RecordEvent(c *gin.Context) {
	var payload request.RecordTimeEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTimeclockPayload.HTTPStatus, errInvalidTimeclockPayload.ToHTTPError())
		return
	}

	event, shift, err := h.usecase.RecordEvent(c.Request.Context(), usecase.RecordEventCommand{
		EmployeeID: payload.EmployeeID,
		Type:       entities.EventType(payload.EventType),
		At:         payload.ResolveTimestamp(),
		Lat:        payload.Lat,
		Lng:        payload.Lng,
	})
	if err != nil {
		log.Printf("[timeclock][handler] record failed employee_id=%s type=%s err=%v", payload.EmployeeID, payload.EventType, err)
		appErr := mapTimeclockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.RecordTimeEventResponse{
		Event: response.FromTimeEvent(event),
		Shift: response.FromShift(shift),
	})
}

func mapTimeclockError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidEventType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShiftNotStarted):
		return pkg.NewDomainErrorSimple("SHIFT_NOT_STARTED", "Clock in before recording other events", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
