package routes

import (
	"assainissement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCitizens     = "/citizens"
	PathReceipts     = "/receipts"
	PathAttestations = "/attestations"
)

func addSepticRoutes(rg *gin.RouterGroup, citizenHandler *handlers.CitizenHandler, receiptHandler *handlers.ReceiptHandler, attestationHandler *handlers.AttestationHandler) {
	citizens := rg.Group(PathCitizens)
	{
		citizens.POST("", citizenHandler.CreateCitizen)
		citizens.GET("", citizenHandler.ListCitizens)
		citizens.GET("/:id", citizenHandler.GetCitizen)
		citizens.PUT("/:id", citizenHandler.UpdateCitizen)
		citizens.DELETE("/:id", citizenHandler.DeleteCitizen)
		citizens.GET("/:id/receipts", receiptHandler.ListReceiptsByCitizen)
		citizens.GET("/:id/receipts/totals", receiptHandler.GetTotalsByCitizen)
	}

	receipts := rg.Group(PathReceipts)
	{
		receipts.POST("", receiptHandler.CreateReceipt)
		receipts.GET("/totals", receiptHandler.GetTotals)
		receipts.PATCH("/:id/status", receiptHandler.UpdateReceiptStatus)
	}

	attestations := rg.Group(PathAttestations)
	{
		attestations.POST("", attestationHandler.CreateAttestation)
		attestations.GET("", attestationHandler.ListAttestations)
		attestations.GET("/:id", attestationHandler.GetAttestation)
		attestations.PUT("/:id", attestationHandler.UpdateAttestation)
		attestations.DELETE("/:id", attestationHandler.DeleteAttestation)
	}
}
