package usecase

import (
	"context"

	"assainissement/internal/domain/entities"
)

// nextReceiptSequence computes the next sequence within a calendar year:
// the maximum numeric prefix among that year's allocated numbers, plus one.
// An untouched year starts at 1. Malformed stored numbers are skipped, never
// fatal. Read-only: nothing is reserved here, the uniqueness guard at insert
// time is what makes the allocation safe.
func (u *ReceiptUseCase) nextReceiptSequence(ctx context.Context, year int) (int, error) {
	numbers, err := u.repo.ListNumbersByYear(ctx, year)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, n := range numbers {
		seq, y, err := entities.ParseReceiptNumber(n)
		if err != nil || y != year {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1, nil
}
