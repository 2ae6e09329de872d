package handlers

import (
	"errors"
	"log"
	"net/http"

	request "assainissement/internal/adapter/http/dto/request"
	response "assainissement/internal/adapter/http/dto/response"
	"assainissement/internal/usecase"
	"assainissement/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCitizenPayload = pkg.NewDomainErrorSimple("INVALID_CITIZEN_INPUT", "Données de citoyen invalides", http.StatusBadRequest)

// CitizenHandler handles HTTP requests for citizen records.

type CitizenHandler struct {
	usecase usecase.ICitizenUseCase
}

func NewCitizenHandler(uc usecase.ICitizenUseCase) *CitizenHandler {
	return &CitizenHandler{usecase: uc}
}

func (h *CitizenHandler) CreateCitizen(c *gin.Context) {
	var payload request.CitizenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCitizenPayload.HTTPStatus, errInvalidCitizenPayload.ToHTTPError())
		return
	}

	log.Printf("[citizen][handler] create start cin=%s", payload.CIN)
	created, err := h.usecase.Create(c.Request.Context(), usecase.CitizenInput{
		FullName: payload.FullName,
		CIN:      payload.CIN,
		Address:  payload.Address,
	})
	if err != nil {
		log.Printf("[citizen][handler] create failed cin=%s err=%v", payload.CIN, err)
		appErr := mapCitizenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[citizen][handler] create success citizen_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.OK(response.FromCitizen(created), "Citoyen créé avec succès"))
}

func (h *CitizenHandler) GetCitizen(c *gin.Context) {
	id := c.Param("id")

	citizen, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[citizen][handler] get failed citizen_id=%s err=%v", id, err)
		appErr := mapCitizenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromCitizen(citizen), "Citoyen récupéré avec succès"))
}

func (h *CitizenHandler) ListCitizens(c *gin.Context) {
	citizens, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("[citizen][handler] list failed err=%v", err)
		appErr := mapCitizenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromCitizens(citizens), "Citoyens récupérés avec succès"))
}

// UpdateCitizen updates identity fields only. The frozen flag is derived
// from receipt history and cannot be set through this endpoint.
func (h *CitizenHandler) UpdateCitizen(c *gin.Context) {
	id := c.Param("id")
	var payload request.CitizenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCitizenPayload.HTTPStatus, errInvalidCitizenPayload.ToHTTPError())
		return
	}

	log.Printf("[citizen][handler] update start citizen_id=%s", id)
	updated, err := h.usecase.Update(c.Request.Context(), id, usecase.CitizenInput{
		FullName: payload.FullName,
		CIN:      payload.CIN,
		Address:  payload.Address,
	})
	if err != nil {
		log.Printf("[citizen][handler] update failed citizen_id=%s err=%v", id, err)
		appErr := mapCitizenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[citizen][handler] update success citizen_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.OK(response.FromCitizen(updated), "Citoyen mis à jour avec succès"))
}

func (h *CitizenHandler) DeleteCitizen(c *gin.Context) {
	id := c.Param("id")

	log.Printf("[citizen][handler] delete start citizen_id=%s", id)
	deleted, err := h.usecase.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[citizen][handler] delete failed citizen_id=%s err=%v", id, err)
		appErr := mapCitizenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[citizen][handler] delete success citizen_id=%s", deleted.ID)

	c.JSON(http.StatusOK, response.OK(response.FromCitizen(deleted), "Citoyen supprimé avec succès"))
}

func mapCitizenError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCitizenID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requête invalide", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFullName):
		return pkg.NewDomainErrorSimple("INVALID_CITIZEN_INPUT", "Le nom complet doit contenir au moins 3 caractères", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCIN):
		return pkg.NewDomainErrorSimple("INVALID_CITIZEN_INPUT", "Le CIN est requis", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAddress):
		return pkg.NewDomainErrorSimple("INVALID_CITIZEN_INPUT", "L'adresse doit contenir au moins 3 caractères", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCitizenNotFound):
		return pkg.NewDomainErrorSimple("CITIZEN_NOT_FOUND", "Citoyen non trouvé", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCINAlreadyUsed):
		return pkg.NewDomainErrorSimple("CIN_ALREADY_USED", "Un citoyen avec ce CIN existe déjà", http.StatusConflict)
	case errors.Is(err, usecase.ErrCitizenHasReceipts):
		return pkg.NewDomainErrorSimple("CITIZEN_HAS_RECEIPTS", "Suppression impossible: le citoyen possède des quittances", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Une erreur interne est survenue", err, http.StatusInternalServerError)
	}
}
