package usecase

import (
	"context"
	"log"

	"assainissement/internal/domain/entities"
)

// RecomputeFrozenStatus derives the citizen's frozen flag from their receipt
// set: frozen holds once entities.FrozenThreshold receipts are not_emptied.
//
// This is the only writer of Citizen.Frozen. The write is skipped when the
// stored flag already matches, so back-to-back invocations with no receipt
// change produce no spurious update.
func (u *ReceiptUseCase) RecomputeFrozenStatus(ctx context.Context, citizenID string) error {
	receipts, err := u.repo.ListByCitizenID(ctx, citizenID)
	if err != nil {
		return err
	}

	notEmptied := 0
	for _, r := range receipts {
		if r.Status == entities.ReceiptStatusNotEmptied {
			notEmptied++
		}
	}
	frozen := notEmptied >= entities.FrozenThreshold

	citizen, err := u.citizenRepo.GetByID(ctx, citizenID)
	if err != nil {
		return err
	}
	if citizen.ID == "" {
		return ErrCitizenNotFound
	}
	if citizen.Frozen == frozen {
		return nil
	}

	if _, err := u.citizenRepo.SetFrozen(ctx, citizenID, frozen); err != nil {
		return err
	}
	log.Printf("[receipt][usecase] frozen status changed citizen_id=%s frozen=%t not_emptied=%d", citizenID, frozen, notEmptied)
	return nil
}
