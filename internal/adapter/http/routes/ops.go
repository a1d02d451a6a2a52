package routes

import (
	"net/http"

	"pestpro_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing     = "/pricing"
	PathTimeclock   = "/timeclock"
	PathTimesheets  = "/timesheets"
	PathServiceArea = "/service-area"
)

func addOpsRoutes(
	rg *gin.RouterGroup,
	pricingHandler *handlers.PricingHandler,
	timeclockHandler *handlers.TimeclockHandler,
	timesheetHandler *handlers.TimesheetHandler,
	serviceAreaHandler *handlers.ServiceAreaHandler,
) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/quote", pricingHandler.CreateQuote)
		pricing.GET("/quotes", pricingHandler.ListQuotesByLead)
		pricing.GET("/quotes/:id", pricingHandler.GetQuoteByID)
	}

	timeclock := rg.Group(PathTimeclock)
	{
		timeclock.POST("/events", timeclockHandler.RecordEvent)
	}

	rg.GET(PathTimesheets, timesheetHandler.GetTimesheets)
	rg.GET(PathServiceArea+"/:zip", serviceAreaHandler.CheckZIP)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
