package interfaces

import (
	"context"

	"assainissement/internal/domain/entities"
)

// IAttestationRepository abstracts DynamoDB persistence for FiscalAttestation.

type IAttestationRepository interface {
	Create(ctx context.Context, a entities.FiscalAttestation) (entities.FiscalAttestation, error)
	GetByID(ctx context.Context, id string) (entities.FiscalAttestation, error)
	ListAll(ctx context.Context) ([]entities.FiscalAttestation, error)
	Update(ctx context.Context, a entities.FiscalAttestation) (entities.FiscalAttestation, error)
	Delete(ctx context.Context, id string) error
}
