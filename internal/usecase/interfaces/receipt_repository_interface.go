package interfaces

import (
	"context"
	"errors"

	"assainissement/internal/domain/entities"
)

// ErrDuplicateReceiptNumber is returned by Create when the storage-level
// uniqueness guard on the receipt number fires. It is the hard backstop for
// the read-then-write numbering scheme: two racing creations can both compute
// the same next number, but only one put can win.
var ErrDuplicateReceiptNumber = errors.New("receipt number already exists")

// IReceiptRepository abstracts DynamoDB persistence for Receipt.
//
// The service must be able to:
//   - create a receipt atomically with its number-uniqueness guard
//   - list a citizen's receipts (frozen derivation, listing, totals)
//   - list the numbers already allocated within a year (numbering authority)
//   - flip a pending receipt to a terminal status, conditionally

type IReceiptRepository interface {
	Create(ctx context.Context, r entities.Receipt) (entities.Receipt, error)
	GetByID(ctx context.Context, id string) (entities.Receipt, error)
	ListByCitizenID(ctx context.Context, citizenID string) ([]entities.Receipt, error)
	ListNumbersByYear(ctx context.Context, year int) ([]string, error)
	ListAll(ctx context.Context) ([]entities.Receipt, error)
	// UpdateStatusFromPending persists the new status only if the stored
	// status is still pending; it returns a zero-value receipt when the
	// receipt is missing or no longer pending.
	UpdateStatusFromPending(ctx context.Context, id string, status entities.ReceiptStatus) (entities.Receipt, error)
}
