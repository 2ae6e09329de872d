package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReceiptNotFound      = errors.New("receipt not found")
	ErrInvalidReceiptID     = errors.New("invalid receipt id")
	ErrInvalidPrice         = errors.New("invalid receipt price")
	ErrInvalidStatus        = errors.New("invalid receipt status")
	ErrStatusPendingTarget  = errors.New("status cannot be reset to pending")
	ErrReceiptNotPending    = errors.New("receipt already left pending")
	ErrCitizenFrozen        = errors.New("citizen is frozen")
	ErrPendingReceiptExists = errors.New("citizen already has a pending receipt")

	// ErrFrozenRecompute flags a degraded success: the receipt write was
	// committed but the frozen-status recomputation failed afterwards. The
	// receipt returned alongside it is valid and persisted.
	ErrFrozenRecompute = errors.New("frozen status recomputation failed")
)

// CreateReceiptInput carries the caller-supplied creation fields. Price and
// Date are optional: a nil price defaults to entities.DefaultReceiptPrice and
// a zero date defaults to the current time.
type CreateReceiptInput struct {
	CitizenID string
	Price     *float64
	Date      time.Time
}

// ReceiptTotals aggregates prices and statuses over a receipt set.
type ReceiptTotals struct {
	EmptiedTotal               float64 `json:"emptied_total"`
	AllTotal                   float64 `json:"all_total"`
	NotEmptiedOrCancelledCount int     `json:"not_emptied_or_cancelled_count"`
}

// IReceiptUseCase exposes the receipt lifecycle operations.
//
// Every write finishes by recomputing the owning citizen's frozen status, so
// the derived flag is never stale after a lifecycle event.

type IReceiptUseCase interface {
	Create(ctx context.Context, in CreateReceiptInput) (entities.Receipt, error)
	UpdateStatus(ctx context.Context, id string, status entities.ReceiptStatus) (entities.Receipt, error)
	ListByCitizenID(ctx context.Context, citizenID string) ([]entities.Receipt, error)
	GetTotals(ctx context.Context) (ReceiptTotals, error)
	GetTotalsByCitizenID(ctx context.Context, citizenID string) (ReceiptTotals, error)
}

type ReceiptUseCase struct {
	repo        interfaces.IReceiptRepository
	citizenRepo interfaces.ICitizenRepository
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(repo interfaces.IReceiptRepository, citizenRepo interfaces.ICitizenRepository) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, citizenRepo: citizenRepo}
}

// Create validates the input, allocates the next year-scoped number and
// persists a pending receipt.
//
// Preconditions are checked in a fixed order, each with its own error:
// input shape, citizen existence, frozen block, one-pending-receipt rule.
// The number allocation is read-then-write; the storage layer's uniqueness
// guard turns a lost race into interfaces.ErrDuplicateReceiptNumber instead
// of a duplicated number.
func (u *ReceiptUseCase) Create(ctx context.Context, in CreateReceiptInput) (entities.Receipt, error) {
	citizenID := strings.TrimSpace(in.CitizenID)
	if _, err := uuid.Parse(citizenID); err != nil {
		return entities.Receipt{}, ErrInvalidCitizenID
	}
	price := entities.DefaultReceiptPrice
	if in.Price != nil {
		price = *in.Price
	}
	if price <= 0 {
		return entities.Receipt{}, ErrInvalidPrice
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	date = date.UTC()

	citizen, err := u.citizenRepo.GetByID(ctx, citizenID)
	if err != nil {
		return entities.Receipt{}, err
	}
	if citizen.ID == "" {
		return entities.Receipt{}, ErrCitizenNotFound
	}
	if citizen.Frozen {
		return entities.Receipt{}, ErrCitizenFrozen
	}

	existing, err := u.repo.ListByCitizenID(ctx, citizenID)
	if err != nil {
		return entities.Receipt{}, err
	}
	for _, r := range existing {
		if r.Status == entities.ReceiptStatusPending {
			return entities.Receipt{}, ErrPendingReceiptExists
		}
	}

	year := date.Year()
	seq, err := u.nextReceiptSequence(ctx, year)
	if err != nil {
		return entities.Receipt{}, err
	}
	number := entities.FormatReceiptNumber(seq, year)

	now := time.Now().UTC()
	r := entities.Receipt{
		ID:        uuid.NewString(),
		CitizenID: citizenID,
		Number:    number,
		Date:      date,
		Price:     price,
		Status:    entities.ReceiptStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Receipt{}, err
	}
	log.Printf("[receipt][usecase] created receipt_id=%s citizen_id=%s number=%s", created.ID, citizenID, created.Number)

	if err := u.RecomputeFrozenStatus(ctx, citizenID); err != nil {
		log.Printf("[receipt][usecase] frozen recompute failed citizen_id=%s err=%v", citizenID, err)
		return created, fmt.Errorf("%w: %v", ErrFrozenRecompute, err)
	}
	return created, nil
}

// UpdateStatus performs the one-shot transition out of pending. The target
// may never be pending, and a receipt that already left pending cannot be
// transitioned again.
func (u *ReceiptUseCase) UpdateStatus(ctx context.Context, id string, status entities.ReceiptStatus) (entities.Receipt, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Receipt{}, ErrInvalidReceiptID
	}
	if status == entities.ReceiptStatusPending {
		return entities.Receipt{}, ErrStatusPendingTarget
	}
	if !status.IsTerminal() {
		return entities.Receipt{}, ErrInvalidStatus
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Receipt{}, err
	}
	if r.ID == "" {
		return entities.Receipt{}, ErrReceiptNotFound
	}
	if r.Status != entities.ReceiptStatusPending {
		return entities.Receipt{}, ErrReceiptNotPending
	}

	// The conditional update re-checks pending in storage, so a racing
	// transition loses here instead of overwriting a terminal status.
	updated, err := u.repo.UpdateStatusFromPending(ctx, id, status)
	if err != nil {
		return entities.Receipt{}, err
	}
	if updated.ID == "" {
		return entities.Receipt{}, ErrReceiptNotPending
	}
	log.Printf("[receipt][usecase] status updated receipt_id=%s citizen_id=%s status=%s", updated.ID, updated.CitizenID, updated.Status)

	if err := u.RecomputeFrozenStatus(ctx, updated.CitizenID); err != nil {
		log.Printf("[receipt][usecase] frozen recompute failed citizen_id=%s err=%v", updated.CitizenID, err)
		return updated, fmt.Errorf("%w: %v", ErrFrozenRecompute, err)
	}
	return updated, nil
}

// ListByCitizenID returns the citizen's receipts, most recent date first.
func (u *ReceiptUseCase) ListByCitizenID(ctx context.Context, citizenID string) ([]entities.Receipt, error) {
	citizenID = strings.TrimSpace(citizenID)
	if _, err := uuid.Parse(citizenID); err != nil {
		return nil, ErrInvalidCitizenID
	}

	receipts, err := u.repo.ListByCitizenID(ctx, citizenID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(receipts, func(i, j int) bool {
		if receipts[i].Date.Equal(receipts[j].Date) {
			return receipts[i].CreatedAt.After(receipts[j].CreatedAt)
		}
		return receipts[i].Date.After(receipts[j].Date)
	})
	return receipts, nil
}

func (u *ReceiptUseCase) GetTotals(ctx context.Context) (ReceiptTotals, error) {
	receipts, err := u.repo.ListAll(ctx)
	if err != nil {
		return ReceiptTotals{}, err
	}
	return totalsOf(receipts), nil
}

func (u *ReceiptUseCase) GetTotalsByCitizenID(ctx context.Context, citizenID string) (ReceiptTotals, error) {
	citizenID = strings.TrimSpace(citizenID)
	if _, err := uuid.Parse(citizenID); err != nil {
		return ReceiptTotals{}, ErrInvalidCitizenID
	}

	receipts, err := u.repo.ListByCitizenID(ctx, citizenID)
	if err != nil {
		return ReceiptTotals{}, err
	}
	return totalsOf(receipts), nil
}

func totalsOf(receipts []entities.Receipt) ReceiptTotals {
	var t ReceiptTotals
	for _, r := range receipts {
		t.AllTotal += r.Price
		switch r.Status {
		case entities.ReceiptStatusEmptied:
			t.EmptiedTotal += r.Price
		case entities.ReceiptStatusNotEmptied, entities.ReceiptStatusCancelled:
			t.NotEmptiedOrCancelledCount++
		}
	}
	return t
}
