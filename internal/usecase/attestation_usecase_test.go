package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"assainissement/internal/domain/entities"
	mock_interfaces "assainissement/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAttestationUseCase_Create(t *testing.T) {
	input := AttestationInput{
		Name:     "Société Atlas",
		ITP:      "1234",
		IF:       "5678",
		Identity: "AB123456",
		Activity: "Commerce",
		Address:  "Avenue Hassan II",
	}

	t.Run("invalid input", func(t *testing.T) {
		uc := NewAttestationUseCase(nil)
		bad := input
		bad.Name = "ab"
		if _, err := uc.Create(context.Background(), bad); !errors.Is(err, ErrInvalidAttestationInput) {
			t.Fatalf("expected ErrInvalidAttestationInput, got %v", err)
		}
		bad = input
		bad.ITP = " "
		if _, err := uc.Create(context.Background(), bad); !errors.Is(err, ErrInvalidAttestationInput) {
			t.Fatalf("expected ErrInvalidAttestationInput, got %v", err)
		}
	})

	t.Run("first number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttestationRepository(ctrl)
		uc := NewAttestationUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.FiscalAttestation{})).DoAndReturn(
			func(_ context.Context, a entities.FiscalAttestation) (entities.FiscalAttestation, error) {
				want := fmt.Sprintf("001/%d", time.Now().Year())
				if a.Number != want {
					t.Fatalf("expected number %s, got %s", want, a.Number)
				}
				return a, nil
			},
		)

		if _, err := uc.Create(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sequence continues from latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttestationRepository(ctrl)
		uc := NewAttestationUseCase(repo)

		now := time.Now().UTC()
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.FiscalAttestation{
			{ID: uuid.NewString(), Number: "008/2024", CreatedAt: now.Add(-48 * time.Hour)},
			{ID: uuid.NewString(), Number: "012/2025", CreatedAt: now.Add(-time.Hour)},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.FiscalAttestation) (entities.FiscalAttestation, error) {
				if !strings.HasPrefix(a.Number, "013/") {
					t.Fatalf("expected sequence 013, got %s", a.Number)
				}
				return a, nil
			},
		)

		if _, err := uc.Create(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAttestationUseCase_Delete(t *testing.T) {
	id := uuid.NewString()

	t.Run("invalid id", func(t *testing.T) {
		uc := NewAttestationUseCase(nil)
		if _, err := uc.Delete(context.Background(), "x"); !errors.Is(err, ErrInvalidAttestationID) {
			t.Fatalf("expected ErrInvalidAttestationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttestationRepository(ctrl)
		uc := NewAttestationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.FiscalAttestation{}, nil)

		if _, err := uc.Delete(context.Background(), id); !errors.Is(err, ErrAttestationNotFound) {
			t.Fatalf("expected ErrAttestationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttestationRepository(ctrl)
		uc := NewAttestationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.FiscalAttestation{ID: id}, nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		deleted, err := uc.Delete(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted.ID != id {
			t.Fatalf("expected attestation back, got %+v", deleted)
		}
	})
}
