package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPartnerByIDQueryHandler reads a single partner.
type GetPartnerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerByIDQueryHandler creates a handler for single-partner lookups.
// Requires a GORM database connection for query execution.
func NewGetPartnerByIDQueryHandler(db *gorm.DB) GetPartnerByIDQueryHandler {
	return GetPartnerByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// partner with the given ID exists.
func (h GetPartnerByIDQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerByIDQuery,
) (GetPartnerByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerByIDQueryResponse{}, err
	}

	var (
		id          uuid.UUID
		name        string
		creditLimit decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			credit_limit
		FROM partners
		WHERE id = ?
	`, query.PartnerID().Bytes()).Row()

	err := row.Scan(&id, &name, &creditLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPartnerByIDQueryResponse{}, errs.NewObjectNotFoundError("partnerID", query.PartnerID())
	}
	if err != nil {
		return GetPartnerByIDQueryResponse{}, err
	}

	partnerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPartnerByIDQueryResponse{}, err
	}

	return GetPartnerByIDQueryResponse{
		ID:          partnerID,
		Name:        name,
		CreditLimit: kernel.NewMoney(creditLimit),
	}, nil
}
