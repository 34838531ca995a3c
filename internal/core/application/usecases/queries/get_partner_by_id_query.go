package queries

import (
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var ErrGetPartnerByIDQueryIsNotConstructed = errors.New(
	"GetPartnerByIDQuery must be created via NewGetPartnerByIDQuery constructor",
)

// GetPartnerByIDQuery retrieves a single partner.
type GetPartnerByIDQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerByIDQuery creates a query for the given partner.
func NewGetPartnerByIDQuery(partnerID kernel.UUID) (GetPartnerByIDQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerByIDQuery{}, err
	}

	return GetPartnerByIDQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnerByIDQueryIsNotConstructed if validation fails.
func (q GetPartnerByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerByIDQueryIsNotConstructed)
}

// PartnerID returns the identifier of the partner to fetch.
func (q GetPartnerByIDQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// GetPartnerByIDQueryResponse represents a partner read model. CreditLimit
// is the currently available credit, not the configured maximum.
type GetPartnerByIDQueryResponse struct {
	ID          kernel.UUID
	Name        string
	CreditLimit kernel.Money
}
