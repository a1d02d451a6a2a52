package handlers

import (
	"errors"
	request "pestpro_ops/internal/adapter/http/dto/request"
	response "pestpro_ops/internal/adapter/http/dto/response"
	"pestpro_ops/internal/usecase"
	"pestpro_ops/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidTimesheetQuery = pkg.NewDomainErrorSimple("INVALID_TIMESHEET_QUERY", "Invalid timesheet query", http.StatusBadRequest)

// TimesheetHandler serves the reporting view: reconstructed per-day segments
// and totals for an employee over a date range.

type TimesheetHandler struct {
	usecase usecase.ITimesheetUseCase
}

func NewTimesheetHandler(uc usecase.ITimesheetUseCase) *TimesheetHandler {
	return &TimesheetHandler{usecase: uc}
}

func (h *TimesheetHandler) GetTimesheets(c *gin.Context) {
	var query request.TimesheetQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidTimesheetQuery.HTTPStatus, errInvalidTimesheetQuery.ToHTTPError())
		return
	}

	report, err := h.usecase.GetTimesheets(c.Request.Context(), query.EmployeeID, query.From, query.To)
	if err != nil {
		appErr := mapTimesheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimesheetReport(report))
}

func mapTimesheetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidDateRange), errors.Is(err, usecase.ErrRangeTooLarge):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
