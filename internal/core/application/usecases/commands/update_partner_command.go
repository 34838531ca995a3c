package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a request to change a partner's name or
// available credit. Setting the credit limit directly is an administrative
// override; order activity adjusts it through debits and credits instead.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.UUID
	name        string
	creditLimit kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner.
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	creditLimit kernel.Money,
) (UpdatePartnerCommand, error) {
	partnerCommand := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setName(name),
		partnerCommand.setCreditLimit(creditLimit),
	); err != nil {
		return UpdatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePartnerCommandIsNotConstructed if validation fails.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the new partner name.
func (c UpdatePartnerCommand) Name() string {
	return c.name
}

// CreditLimit returns the new available credit.
func (c UpdatePartnerCommand) CreditLimit() kernel.Money {
	return c.creditLimit
}

func (c *UpdatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrPartnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdatePartnerCommand) setCreditLimit(creditLimit kernel.Money) error {
	if creditLimit.IsNegative() {
		return ErrCreditLimitIsNegative
	}

	c.creditLimit = creditLimit
	return nil
}
