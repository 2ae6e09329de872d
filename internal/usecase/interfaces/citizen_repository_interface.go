package interfaces

import (
	"context"

	"assainissement/internal/domain/entities"
)

// ICitizenRepository abstracts DynamoDB persistence for Citizen.
//
// GetByCIN resolves by the lowercased CIN so that uniqueness checks are
// case-insensitive. SetFrozen is the narrow write used by the status
// derivation routine; Update never touches the frozen flag.

type ICitizenRepository interface {
	Create(ctx context.Context, c entities.Citizen) (entities.Citizen, error)
	GetByID(ctx context.Context, id string) (entities.Citizen, error)
	GetByCIN(ctx context.Context, cin string) (entities.Citizen, error)
	ListAll(ctx context.Context) ([]entities.Citizen, error)
	Update(ctx context.Context, c entities.Citizen) (entities.Citizen, error)
	SetFrozen(ctx context.Context, id string, frozen bool) (entities.Citizen, error)
	Delete(ctx context.Context, id string) error
}
