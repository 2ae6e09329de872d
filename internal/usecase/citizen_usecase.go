package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCitizenNotFound    = errors.New("citizen not found")
	ErrInvalidCitizenID   = errors.New("invalid citizen id")
	ErrInvalidFullName    = errors.New("invalid full name")
	ErrInvalidCIN         = errors.New("invalid cin")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrCINAlreadyUsed     = errors.New("cin already used")
	ErrCitizenHasReceipts = errors.New("citizen still has receipts")
)

// CitizenInput carries the caller-editable citizen fields. The frozen flag
// is deliberately absent: it is derived state owned by the receipt usecase.
type CitizenInput struct {
	FullName string
	CIN      string
	Address  string
}

func (in CitizenInput) validate() error {
	if len(strings.TrimSpace(in.FullName)) < 3 {
		return ErrInvalidFullName
	}
	if strings.TrimSpace(in.CIN) == "" {
		return ErrInvalidCIN
	}
	if len(strings.TrimSpace(in.Address)) < 3 {
		return ErrInvalidAddress
	}
	return nil
}

// ICitizenUseCase exposes citizen management operations.

type ICitizenUseCase interface {
	Create(ctx context.Context, in CitizenInput) (entities.Citizen, error)
	GetByID(ctx context.Context, id string) (entities.Citizen, error)
	ListAll(ctx context.Context) ([]entities.Citizen, error)
	Update(ctx context.Context, id string, in CitizenInput) (entities.Citizen, error)
	Delete(ctx context.Context, id string) (entities.Citizen, error)
}

type CitizenUseCase struct {
	repo        interfaces.ICitizenRepository
	receiptRepo interfaces.IReceiptRepository
}

var _ ICitizenUseCase = (*CitizenUseCase)(nil)

func NewCitizenUseCase(repo interfaces.ICitizenRepository, receiptRepo interfaces.IReceiptRepository) *CitizenUseCase {
	return &CitizenUseCase{repo: repo, receiptRepo: receiptRepo}
}

func (u *CitizenUseCase) Create(ctx context.Context, in CitizenInput) (entities.Citizen, error) {
	if err := in.validate(); err != nil {
		return entities.Citizen{}, err
	}

	cin := strings.TrimSpace(in.CIN)
	existing, err := u.repo.GetByCIN(ctx, strings.ToLower(cin))
	if err != nil {
		return entities.Citizen{}, err
	}
	if existing.ID != "" {
		return entities.Citizen{}, ErrCINAlreadyUsed
	}

	now := time.Now().UTC()
	c := entities.Citizen{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(in.FullName),
		CIN:       cin,
		Address:   strings.TrimSpace(in.Address),
		Frozen:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Citizen{}, err
	}
	log.Printf("[citizen][usecase] created citizen_id=%s cin=%s", created.ID, created.CIN)
	return created, nil
}

func (u *CitizenUseCase) GetByID(ctx context.Context, id string) (entities.Citizen, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Citizen{}, ErrInvalidCitizenID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Citizen{}, err
	}
	if c.ID == "" {
		return entities.Citizen{}, ErrCitizenNotFound
	}
	return c, nil
}

// ListAll returns all citizens, most recently registered first.
func (u *CitizenUseCase) ListAll(ctx context.Context) ([]entities.Citizen, error) {
	citizens, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(citizens, func(i, j int) bool {
		return citizens[i].CreatedAt.After(citizens[j].CreatedAt)
	})
	return citizens, nil
}

// Update edits the citizen's identity fields. The CIN uniqueness check is
// case-insensitive and only runs when the CIN actually changes.
func (u *CitizenUseCase) Update(ctx context.Context, id string, in CitizenInput) (entities.Citizen, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Citizen{}, ErrInvalidCitizenID
	}
	if err := in.validate(); err != nil {
		return entities.Citizen{}, err
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Citizen{}, err
	}
	if c.ID == "" {
		return entities.Citizen{}, ErrCitizenNotFound
	}

	cin := strings.TrimSpace(in.CIN)
	if !strings.EqualFold(cin, c.CIN) {
		existing, err := u.repo.GetByCIN(ctx, strings.ToLower(cin))
		if err != nil {
			return entities.Citizen{}, err
		}
		if existing.ID != "" && existing.ID != id {
			return entities.Citizen{}, ErrCINAlreadyUsed
		}
	}

	c.FullName = strings.TrimSpace(in.FullName)
	c.CIN = cin
	c.Address = strings.TrimSpace(in.Address)
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Citizen{}, err
	}
	if updated.ID == "" {
		return entities.Citizen{}, ErrCitizenNotFound
	}
	log.Printf("[citizen][usecase] updated citizen_id=%s", updated.ID)
	return updated, nil
}

// Delete removes a citizen. Deletion is refused while any receipt still
// references the citizen; receipts are fiscal records and never cascade.
func (u *CitizenUseCase) Delete(ctx context.Context, id string) (entities.Citizen, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Citizen{}, ErrInvalidCitizenID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Citizen{}, err
	}
	if c.ID == "" {
		return entities.Citizen{}, ErrCitizenNotFound
	}

	receipts, err := u.receiptRepo.ListByCitizenID(ctx, id)
	if err != nil {
		return entities.Citizen{}, err
	}
	if len(receipts) > 0 {
		return entities.Citizen{}, ErrCitizenHasReceipts
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return entities.Citizen{}, err
	}
	log.Printf("[citizen][usecase] deleted citizen_id=%s", id)
	return c, nil
}
