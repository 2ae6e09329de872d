package routes

import (
	"log"
	"strconv"

	_ "assainissement/docs" // This will be auto-generated
	"assainissement/internal/adapter/http/handlers"
	repository2 "assainissement/internal/adapter/persistence/repository"
	"assainissement/internal/infrastructure/database"
	"assainissement/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

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
	database.EnsureTables(ddb)

	receiptRepo := repository2.NewReceiptDynamoRepository(ddb)
	citizenRepo := repository2.NewCitizenDynamoRepository(ddb)
	attestationRepo := repository2.NewAttestationDynamoRepository(ddb)

	receiptUseCase := usecase.NewReceiptUseCase(receiptRepo, citizenRepo)
	citizenUseCase := usecase.NewCitizenUseCase(citizenRepo, receiptRepo)
	attestationUseCase := usecase.NewAttestationUseCase(attestationRepo)

	receiptHandler := handlers.NewReceiptHandler(receiptUseCase)
	citizenHandler := handlers.NewCitizenHandler(citizenUseCase)
	attestationHandler := handlers.NewAttestationHandler(attestationUseCase)

	// Rotas publiques
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSepticRoutes(v1, citizenHandler, receiptHandler, attestationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
