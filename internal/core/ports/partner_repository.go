package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
// Partner name uniqueness is enforced at this boundary.
type PartnerRepository interface {
	// Add persists a new partner. Fails with an already-exists error when
	// the name is taken.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner, including credit
	// movements applied by the lifecycle engine.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner by its unique identifier. When called inside
	// a unit-of-work transaction the partner row is locked for update,
	// which serializes concurrent credit operations against one partner.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetByName retrieves a partner by its unique name.
	GetByName(ctx context.Context, name string) (*partner.Partner, error)
}
