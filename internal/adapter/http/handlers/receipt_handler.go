package handlers

import (
	"errors"
	"log"
	"net/http"

	request "assainissement/internal/adapter/http/dto/request"
	response "assainissement/internal/adapter/http/dto/response"
	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase"
	"assainissement/internal/usecase/interfaces"
	"assainissement/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReceiptPayload = pkg.NewDomainErrorSimple("INVALID_RECEIPT_INPUT", "Données de quittance invalides", http.StatusBadRequest)

// ReceiptHandler handles HTTP requests for septic service receipts.

type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// CreateReceipt issues a new receipt for a citizen. The receipt number is
// always assigned server side; price and date fall back to the defaults when
// omitted.
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	var payload request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RECEIPT_DATE", "Format de date invalide, attendu AAAA-MM-JJ", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[receipt][handler] create start citizen_id=%s", payload.CitizenID)
	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateReceiptInput{
		CitizenID: payload.CitizenID,
		Price:     payload.Price,
		Date:      date,
	})
	if err != nil {
		// The receipt itself was written; only the frozen recomputation
		// failed. The citizen's status will settle on the next write.
		if errors.Is(err, usecase.ErrFrozenRecompute) {
			log.Printf("[receipt][handler] create degraded receipt_id=%s err=%v", created.ID, err)
			c.JSON(http.StatusCreated, response.OK(response.FromReceipt(created), "Quittance créée, mais le statut du citoyen n'a pas pu être recalculé"))
			return
		}
		log.Printf("[receipt][handler] create failed citizen_id=%s err=%v", payload.CitizenID, err)
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[receipt][handler] create success receipt_id=%s number=%s", created.ID, created.Number)

	c.JSON(http.StatusCreated, response.OK(response.FromReceipt(created), "Quittance créée avec succès"))
}

// UpdateReceiptStatus moves a pending receipt to a terminal status.
func (h *ReceiptHandler) UpdateReceiptStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateReceiptStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	log.Printf("[receipt][handler] update-status start receipt_id=%s status=%s", id, payload.Status)
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.ReceiptStatus(payload.Status))
	if err != nil {
		if errors.Is(err, usecase.ErrFrozenRecompute) {
			log.Printf("[receipt][handler] update-status degraded receipt_id=%s err=%v", id, err)
			c.JSON(http.StatusOK, response.OK(response.FromReceipt(updated), "Statut mis à jour, mais le statut du citoyen n'a pas pu être recalculé"))
			return
		}
		log.Printf("[receipt][handler] update-status failed receipt_id=%s err=%v", id, err)
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[receipt][handler] update-status success receipt_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.OK(response.FromReceipt(updated), "Statut de la quittance mis à jour avec succès"))
}

// ListReceiptsByCitizen returns a citizen's receipts, most recent first.
func (h *ReceiptHandler) ListReceiptsByCitizen(c *gin.Context) {
	id := c.Param("id")

	receipts, err := h.usecase.ListByCitizenID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[receipt][handler] list-by-citizen failed citizen_id=%s err=%v", id, err)
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromReceipts(receipts), "Quittances récupérées avec succès"))
}

// GetTotals returns the ledger aggregates over every receipt.
func (h *ReceiptHandler) GetTotals(c *gin.Context) {
	totals, err := h.usecase.GetTotals(c.Request.Context())
	if err != nil {
		log.Printf("[receipt][handler] totals failed err=%v", err)
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromTotals(totals), "Totaux récupérés avec succès"))
}

// GetTotalsByCitizen returns the ledger aggregates for one citizen.
func (h *ReceiptHandler) GetTotalsByCitizen(c *gin.Context) {
	id := c.Param("id")

	totals, err := h.usecase.GetTotalsByCitizenID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[receipt][handler] totals-by-citizen failed citizen_id=%s err=%v", id, err)
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromTotals(totals), "Totaux récupérés avec succès"))
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReceiptID), errors.Is(err, usecase.ErrInvalidCitizenID), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requête invalide", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Statut de quittance invalide", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusPendingTarget):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Une quittance ne peut pas revenir au statut 'pending'", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCitizenNotFound):
		return pkg.NewDomainErrorSimple("CITIZEN_NOT_FOUND", "Citoyen non trouvé", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceiptNotFound):
		return pkg.NewDomainErrorSimple("RECEIPT_NOT_FOUND", "Quittance non trouvée", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCitizenFrozen):
		return pkg.NewDomainErrorSimple("CITIZEN_FROZEN", "Citoyen bloqué: aucune nouvelle quittance ne peut être créée", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPendingReceiptExists):
		return pkg.NewDomainErrorSimple("PENDING_RECEIPT_EXISTS", "Une quittance en attente existe déjà pour ce citoyen", http.StatusConflict)
	case errors.Is(err, usecase.ErrReceiptNotPending):
		return pkg.NewDomainErrorSimple("RECEIPT_NOT_PENDING", "Seules les quittances en attente peuvent changer de statut", http.StatusConflict)
	case errors.Is(err, interfaces.ErrDuplicateReceiptNumber):
		return pkg.NewDomainErrorSimple("DUPLICATE_RECEIPT_NUMBER", "Numéro de quittance déjà attribué", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Une erreur interne est survenue", err, http.StatusInternalServerError)
	}
}
