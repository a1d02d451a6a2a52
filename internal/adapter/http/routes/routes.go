package routes

import (
	"log"
	_ "pestpro_ops/docs" // This will be auto-generated
	"pestpro_ops/internal/adapter/http/handlers"
	repository2 "pestpro_ops/internal/adapter/persistence/repository"
	"pestpro_ops/internal/domain/coverage"
	"pestpro_ops/internal/domain/pricing"
	"pestpro_ops/internal/infrastructure/database"
	"pestpro_ops/internal/usecase"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// defaultServiceAreaZIPs is the fallback coverage list when
// SERVICE_AREA_ZIPS is not configured.
const defaultServiceAreaZIPs = "30039,30013,30094,30038,30058,30078,30017,30052"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	shiftRepo := repository2.NewShiftDynamoRepository(ddb)
	eventRepo := repository2.NewTimeEventDynamoRepository(ddb)

	pricingUseCase := usecase.NewPricingUseCase(pricing.DefaultTable(), quoteRepo)
	timeclockUseCase := usecase.NewTimeclockUseCase(shiftRepo, eventRepo)
	timesheetUseCase := usecase.NewTimesheetUseCase(shiftRepo, eventRepo)

	zips := coverage.ParseZIPList(getenvDefault("SERVICE_AREA_ZIPS", defaultServiceAreaZIPs))
	area := coverage.NewArea(zips)

	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	timeclockHandler := handlers.NewTimeclockHandler(timeclockUseCase)
	timesheetHandler := handlers.NewTimesheetHandler(timesheetUseCase)
	serviceAreaHandler := handlers.NewServiceAreaHandler(area)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOpsRoutes(v1, pricingHandler, timeclockHandler, timesheetHandler, serviceAreaHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
