package handlers

import (
	response "pestpro_ops/internal/adapter/http/dto/response"
	"pestpro_ops/internal/domain/coverage"
	"pestpro_ops/pkg"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ServiceAreaHandler answers the marketing site's coverage check against the
// static service-area ZIP list.

type ServiceAreaHandler struct {
	area *coverage.Area
}

func NewServiceAreaHandler(area *coverage.Area) *ServiceAreaHandler {
	return &ServiceAreaHandler{area: area}
}

func (h *ServiceAreaHandler) CheckZIP(c *gin.Context) {
	zip := c.Param("zip")
	if !zipPattern.MatchString(zip) {
		appErr := pkg.NewDomainErrorSimple("INVALID_ZIP", "Invalid ZIP code", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ServiceAreaResponse{
		ZIP:     zip,
		Covered: h.area.Covers(zip),
	})
}
