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

var errInvalidAttestationPayload = pkg.NewDomainErrorSimple("INVALID_ATTESTATION_INPUT", "Données d'attestation invalides", http.StatusBadRequest)

// AttestationHandler handles HTTP requests for fiscal attestations.

type AttestationHandler struct {
	usecase usecase.IAttestationUseCase
}

func NewAttestationHandler(uc usecase.IAttestationUseCase) *AttestationHandler {
	return &AttestationHandler{usecase: uc}
}

// CreateAttestation issues an attestation with the next number in the
// global sequence.
func (h *AttestationHandler) CreateAttestation(c *gin.Context) {
	var payload request.AttestationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttestationPayload.HTTPStatus, errInvalidAttestationPayload.ToHTTPError())
		return
	}

	log.Printf("[attestation][handler] create start name=%s", payload.Name)
	created, err := h.usecase.Create(c.Request.Context(), toAttestationInput(payload))
	if err != nil {
		log.Printf("[attestation][handler] create failed err=%v", err)
		appErr := mapAttestationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[attestation][handler] create success attestation_id=%s number=%s", created.ID, created.Number)

	c.JSON(http.StatusCreated, response.OK(response.FromAttestation(created), "Attestation créée avec succès"))
}

func (h *AttestationHandler) GetAttestation(c *gin.Context) {
	id := c.Param("id")

	attestation, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[attestation][handler] get failed attestation_id=%s err=%v", id, err)
		appErr := mapAttestationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromAttestation(attestation), "Attestation récupérée avec succès"))
}

func (h *AttestationHandler) ListAttestations(c *gin.Context) {
	attestations, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("[attestation][handler] list failed err=%v", err)
		appErr := mapAttestationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromAttestations(attestations), "Attestations récupérées avec succès"))
}

// UpdateAttestation edits the holder fields. The attestation number never
// changes after issuance.
func (h *AttestationHandler) UpdateAttestation(c *gin.Context) {
	id := c.Param("id")
	var payload request.AttestationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttestationPayload.HTTPStatus, errInvalidAttestationPayload.ToHTTPError())
		return
	}

	log.Printf("[attestation][handler] update start attestation_id=%s", id)
	updated, err := h.usecase.Update(c.Request.Context(), id, toAttestationInput(payload))
	if err != nil {
		log.Printf("[attestation][handler] update failed attestation_id=%s err=%v", id, err)
		appErr := mapAttestationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[attestation][handler] update success attestation_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.OK(response.FromAttestation(updated), "Attestation mise à jour avec succès"))
}

func (h *AttestationHandler) DeleteAttestation(c *gin.Context) {
	id := c.Param("id")

	log.Printf("[attestation][handler] delete start attestation_id=%s", id)
	deleted, err := h.usecase.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[attestation][handler] delete failed attestation_id=%s err=%v", id, err)
		appErr := mapAttestationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[attestation][handler] delete success attestation_id=%s", deleted.ID)

	c.JSON(http.StatusOK, response.OK(response.FromAttestation(deleted), "Attestation supprimée avec succès"))
}

func toAttestationInput(payload request.AttestationRequest) usecase.AttestationInput {
	return usecase.AttestationInput{
		Type:     payload.Type,
		Name:     payload.Name,
		ITP:      payload.ITP,
		IF:       payload.IF,
		Identity: payload.Identity,
		Activity: payload.Activity,
		Address:  payload.Address,
	}
}

func mapAttestationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttestationID), errors.Is(err, usecase.ErrInvalidAttestationInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requête invalide", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttestationNotFound):
		return pkg.NewDomainErrorSimple("ATTESTATION_NOT_FOUND", "Attestation non trouvée", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Une erreur interne est survenue", err, http.StatusInternalServerError)
	}
}
