package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assainissement/internal/adapter/http/handlers/mocks"
	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAttestationHandler_CreateAttestation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IAttestationUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/attestations", NewAttestationHandler(uc).CreateAttestation)
		return r
	}

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttestationUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/attestations", bytes.NewBufferString(`{"name":"STE EXEMPLE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success assigns number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttestationUseCase(ctrl)
		created := entities.FiscalAttestation{ID: "a-1", Number: "007/2025", Name: "STE EXEMPLE"}
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
		r := newRouter(uc)

		payload := `{"type":true,"name":"STE EXEMPLE","itp":"123","if":"456","identity":"AB123456","activity":"Commerce","address":"Rue 12"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/attestations", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		body := decodeEnvelope(t, w)
		var data struct {
			Number string `json:"attestation_number"`
		}
		if err := json.Unmarshal(body.Data, &data); err != nil {
			t.Fatalf("invalid data payload: %v", err)
		}
		if data.Number != "007/2025" {
			t.Errorf("expected number 007/2025, got %q", data.Number)
		}
	})
}

func TestAttestationHandler_GetAttestation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttestationUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "a-404").Return(entities.FiscalAttestation{}, usecase.ErrAttestationNotFound)

		r := gin.New()
		r.GET("/v1/attestations/:id", NewAttestationHandler(uc).GetAttestation)

		req := httptest.NewRequest(http.MethodGet, "/v1/attestations/a-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
