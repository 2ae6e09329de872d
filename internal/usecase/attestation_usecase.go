package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAttestationNotFound     = errors.New("attestation not found")
	ErrInvalidAttestationID    = errors.New("invalid attestation id")
	ErrInvalidAttestationInput = errors.New("invalid attestation input")
)

// AttestationInput carries the caller-editable attestation fields. The
// attestation number is server-assigned and never part of the input.
type AttestationInput struct {
	Type     bool
	Name     string
	ITP      string
	IF       string
	Identity string
	Activity string
	Address  string
}

func (in AttestationInput) validate() error {
	if len(strings.TrimSpace(in.Name)) < 3 ||
		strings.TrimSpace(in.ITP) == "" ||
		strings.TrimSpace(in.IF) == "" ||
		strings.TrimSpace(in.Identity) == "" ||
		len(strings.TrimSpace(in.Activity)) < 3 ||
		len(strings.TrimSpace(in.Address)) < 3 {
		return ErrInvalidAttestationInput
	}
	return nil
}

// IAttestationUseCase exposes fiscal attestation management operations.

type IAttestationUseCase interface {
	Create(ctx context.Context, in AttestationInput) (entities.FiscalAttestation, error)
	GetByID(ctx context.Context, id string) (entities.FiscalAttestation, error)
	ListAll(ctx context.Context) ([]entities.FiscalAttestation, error)
	Update(ctx context.Context, id string, in AttestationInput) (entities.FiscalAttestation, error)
	Delete(ctx context.Context, id string) (entities.FiscalAttestation, error)
}

type AttestationUseCase struct {
	repo interfaces.IAttestationRepository
}

var _ IAttestationUseCase = (*AttestationUseCase)(nil)

func NewAttestationUseCase(repo interfaces.IAttestationRepository) *AttestationUseCase {
	return &AttestationUseCase{repo: repo}
}

func (u *AttestationUseCase) Create(ctx context.Context, in AttestationInput) (entities.FiscalAttestation, error) {
	if err := in.validate(); err != nil {
		return entities.FiscalAttestation{}, err
	}

	number, err := u.nextAttestationNumber(ctx)
	if err != nil {
		return entities.FiscalAttestation{}, err
	}

	now := time.Now().UTC()
	a := entities.FiscalAttestation{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Number:    number,
		Name:      strings.TrimSpace(in.Name),
		ITP:       strings.TrimSpace(in.ITP),
		IF:        strings.TrimSpace(in.IF),
		Identity:  strings.TrimSpace(in.Identity),
		Activity:  strings.TrimSpace(in.Activity),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.FiscalAttestation{}, err
	}
	log.Printf("[attestation][usecase] created attestation_id=%s number=%s", created.ID, created.Number)
	return created, nil
}

// nextAttestationNumber continues the global sequence from the most recently
// issued attestation, zero-padded to three digits and suffixed with the
// current year. Unlike receipt numbers the sequence does not reset per year.
func (u *AttestationUseCase) nextAttestationNumber(ctx context.Context) (string, error) {
	attestations, err := u.repo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	lastIndex := 0
	var latest time.Time
	for _, a := range attestations {
		if !a.CreatedAt.After(latest) {
			continue
		}
		prefix, _, _ := strings.Cut(a.Number, "/")
		if n, err := strconv.Atoi(prefix); err == nil {
			latest = a.CreatedAt
			lastIndex = n
		}
	}

	return fmt.Sprintf("%03d/%d", lastIndex+1, time.Now().Year()), nil
}

func (u *AttestationUseCase) GetByID(ctx context.Context, id string) (entities.FiscalAttestation, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.FiscalAttestation{}, ErrInvalidAttestationID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FiscalAttestation{}, err
	}
	if a.ID == "" {
		return entities.FiscalAttestation{}, ErrAttestationNotFound
	}
	return a, nil
}

// ListAll returns all attestations, most recently issued first.
func (u *AttestationUseCase) ListAll(ctx context.Context) ([]entities.FiscalAttestation, error) {
	attestations, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(attestations, func(i, j int) bool {
		return attestations[i].CreatedAt.After(attestations[j].CreatedAt)
	})
	return attestations, nil
}

func (u *AttestationUseCase) Update(ctx context.Context, id string, in AttestationInput) (entities.FiscalAttestation, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.FiscalAttestation{}, ErrInvalidAttestationID
	}
	if err := in.validate(); err != nil {
		return entities.FiscalAttestation{}, err
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FiscalAttestation{}, err
	}
	if a.ID == "" {
		return entities.FiscalAttestation{}, ErrAttestationNotFound
	}

	a.Type = in.Type
	a.Name = strings.TrimSpace(in.Name)
	a.ITP = strings.TrimSpace(in.ITP)
	a.IF = strings.TrimSpace(in.IF)
	a.Identity = strings.TrimSpace(in.Identity)
	a.Activity = strings.TrimSpace(in.Activity)
	a.Address = strings.TrimSpace(in.Address)
	a.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.FiscalAttestation{}, err
	}
	if updated.ID == "" {
		return entities.FiscalAttestation{}, ErrAttestationNotFound
	}
	return updated, nil
}

func (u *AttestationUseCase) Delete(ctx context.Context, id string) (entities.FiscalAttestation, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.FiscalAttestation{}, ErrInvalidAttestationID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FiscalAttestation{}, err
	}
	if a.ID == "" {
		return entities.FiscalAttestation{}, ErrAttestationNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return entities.FiscalAttestation{}, err
	}
	return a, nil
}
