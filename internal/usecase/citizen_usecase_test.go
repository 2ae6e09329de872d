package usecase

import (
	"context"
	"errors"
	"testing"

	"assainissement/internal/domain/entities"
	mock_interfaces "assainissement/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newCitizenMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockICitizenRepository, *mock_interfaces.MockIReceiptRepository, *CitizenUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICitizenRepository(ctrl)
	receiptRepo := mock_interfaces.NewMockIReceiptRepository(ctrl)
	return ctrl, repo, receiptRepo, NewCitizenUseCase(repo, receiptRepo)
}

func TestCitizenUseCase_Create(t *testing.T) {
	input := CitizenInput{FullName: "Ahmed Alami", CIN: "AB123456", Address: "12 Rue des Orangers"}

	t.Run("validation", func(t *testing.T) {
		uc := NewCitizenUseCase(nil, nil)
		cases := []struct {
			name string
			in   CitizenInput
			want error
		}{
			{"short name", CitizenInput{FullName: "Al", CIN: "AB1", Address: "12 Rue"}, ErrInvalidFullName},
			{"empty cin", CitizenInput{FullName: "Ahmed Alami", CIN: "  ", Address: "12 Rue"}, ErrInvalidCIN},
			{"short address", CitizenInput{FullName: "Ahmed Alami", CIN: "AB1", Address: "x"}, ErrInvalidAddress},
		}
		for _, tc := range cases {
			if _, err := uc.Create(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})

	t.Run("duplicate cin", func(t *testing.T) {
		ctrl, repo, _, uc := newCitizenMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByCIN(gomock.Any(), "ab123456").Return(entities.Citizen{ID: uuid.NewString()}, nil)

		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrCINAlreadyUsed) {
			t.Fatalf("expected ErrCINAlreadyUsed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, _, uc := newCitizenMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByCIN(gomock.Any(), "ab123456").Return(entities.Citizen{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Citizen{})).DoAndReturn(
			func(_ context.Context, c entities.Citizen) (entities.Citizen, error) {
				if c.ID == "" || c.FullName != "Ahmed Alami" || c.CIN != "AB123456" {
					t.Fatalf("unexpected citizen: %+v", c)
				}
				if c.Frozen {
					t.Fatalf("new citizen must not be frozen")
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCitizenUseCase_Update(t *testing.T) {
	id := uuid.NewString()
	stored := entities.Citizen{ID: id, FullName: "Ahmed Alami", CIN: "AB123456", Address: "12 Rue des Orangers"}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewCitizenUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "nope", CitizenInput{FullName: "Ahmed Alami", CIN: "X", Address: "12 Rue"})
		if !errors.Is(err, ErrInvalidCitizenID) {
			t.Fatalf("expected ErrInvalidCitizenID, got %v", err)
		}
	})

	t.Run("case-only cin change skips uniqueness check", func(t *testing.T) {
		ctrl, repo, _, uc := newCitizenMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Citizen{})).DoAndReturn(
			func(_ context.Context, c entities.Citizen) (entities.Citizen, error) { return c, nil },
		)

		updated, err := uc.Update(context.Background(), id, CitizenInput{FullName: "Ahmed Alami", CIN: "ab123456", Address: "12 Rue des Orangers"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CIN != "ab123456" {
			t.Fatalf("expected cin to be stored as given, got %s", updated.CIN)
		}
	})

	t.Run("cin taken by another citizen", func(t *testing.T) {
		ctrl, repo, _, uc := newCitizenMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
		repo.EXPECT().GetByCIN(gomock.Any(), "cd789").Return(entities.Citizen{ID: uuid.NewString()}, nil)

		_, err := uc.Update(context.Background(), id, CitizenInput{FullName: "Ahmed Alami", CIN: "CD789", Address: "12 Rue des Orangers"})
		if !errors.Is(err, ErrCINAlreadyUsed) {
			t.Fatalf("expected ErrCINAlreadyUsed, got %v", err)
		}
	})
}

func TestCitizenUseCase_Delete(t *testing.T) {
	id := uuid.NewString()
	stored := entities.Citizen{ID: id, FullName: "Ahmed Alami"}

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _, uc := newCitizenMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.Citizen{}, nil)

		_, err := uc.Delete(context.Background(), id)
		if !errors.Is(err, ErrCitizenNotFound) {
			t.Fatalf("expected ErrCitizenNotFound, got %v", err)
		}
	})

	t.Run("blocked while receipts exist", func(t *testing.T) {
		ctrl, repo, receiptRepo, uc := newCitizenMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
		receiptRepo.EXPECT().ListByCitizenID(gomock.Any(), id).Return([]entities.Receipt{{ID: uuid.NewString()}}, nil)

		_, err := uc.Delete(context.Background(), id)
		if !errors.Is(err, ErrCitizenHasReceipts) {
			t.Fatalf("expected ErrCitizenHasReceipts, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, receiptRepo, uc := newCitizenMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
		receiptRepo.EXPECT().ListByCitizenID(gomock.Any(), id).Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		deleted, err := uc.Delete(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted.ID != id {
			t.Fatalf("expected deleted citizen back, got %+v", deleted)
		}
	})
}
