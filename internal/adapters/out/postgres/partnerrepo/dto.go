// Package partnerrepo provides data transfer objects and mapping functions
// for partner persistence.
package partnerrepo

import (
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerDTO represents the database structure for persisting partner
// aggregates. The credit_limit column holds the currently available credit;
// order approvals and cancellations move it up and down.
type PartnerDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"uniqueIndex"`
	CreditLimit decimal.Decimal `gorm:"type:numeric(19,2)"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		CreditLimit: aggregate.CreditLimit().Decimal(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(id, dto.Name, kernel.NewMoney(dto.CreditLimit))
}
