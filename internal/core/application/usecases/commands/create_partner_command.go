package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrPartnerNameIsRequired = errors.New("partner name is required")
	ErrCreditLimitIsNegative = errors.New("credit limit must not be negative")
)

// CreatePartnerCommand represents a request to register a new partner with an
// initial credit limit.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.UUID
	name        string
	creditLimit kernel.Money

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a partner.
// Validates that the ID is valid, the name is non-empty and the initial
// credit limit is non-negative.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	creditLimit kernel.Money,
) (CreatePartnerCommand, error) {
	partnerCommand := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setName(name),
		partnerCommand.setCreditLimit(creditLimit),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the new partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's unique display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// CreditLimit returns the initial available credit.
func (c CreatePartnerCommand) CreditLimit() kernel.Money {
	return c.creditLimit
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrPartnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setCreditLimit(creditLimit kernel.Money) error {
	if creditLimit.IsNegative() {
		return ErrCreditLimitIsNegative
	}

	c.creditLimit = creditLimit
	return nil
}
