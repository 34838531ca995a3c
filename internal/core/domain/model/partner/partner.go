package partner

import (
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

var (
	// ErrPartnerIsNotConstructed is returned when a Partner instance was not
	// created through the NewPartner or RestorePartner factory methods.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

	// ErrInsufficientCredit is returned when a debit would take the
	// partner's available credit below zero. The balance is left unchanged.
	ErrInsufficientCredit = errors.New("insufficient partner credit")
)

// Partner is the aggregate root for a business partner placing orders
// against a revolving credit line. Its creditLimit field is the *currently
// available* credit, not a static ceiling: approving an order debits it and
// cancelling an approved order credits it back.
//
// Partner maintains one invariant above all: available credit never goes
// negative. Debit checks and subtracts in a single method, so as long as
// concurrent access to one partner is serialized (the persistence layer
// locks the partner row for update), two debits can never both observe a
// sufficient balance before either commits.
type Partner struct {
	// id is the unique identifier of the partner
	id kernel.UUID

	// name is the partner's unique business name
	name string

	// creditLimit is the currently available credit, never negative
	creditLimit kernel.Money

	// isConstructed ensures the partner was created via a factory method
	isConstructed bool
}

// NewPartner creates a partner with a non-empty unique name and a
// non-negative opening credit limit. Name uniqueness across partners is
// enforced at the persistence boundary.
func NewPartner(id kernel.UUID, name string, creditLimit kernel.Money) (*Partner, error) {
	partner := &Partner{
		isConstructed: true,
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setCreditLimit(creditLimit),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// RestorePartner reconstructs a partner from persistence.
func RestorePartner(id kernel.UUID, name string, creditLimit kernel.Money) (*Partner, error) {
	return NewPartner(id, name, creditLimit)
}

// Validate ensures the Partner instance was properly constructed through a
// factory method.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's business name.
func (p *Partner) Name() string {
	return p.name
}

// CreditLimit returns the partner's currently available credit.
func (p *Partner) CreditLimit() kernel.Money {
	return p.creditLimit
}

// HasCreditFor reports whether the available credit covers the given amount.
// Used for the creation-time check, which reserves nothing.
func (p *Partner) HasCreditFor(amount kernel.Money) bool {
	return !p.creditLimit.LessThan(amount)
}

// Debit atomically checks and subtracts amount from the available credit.
// Fails with ErrInsufficientCredit when the balance does not cover the
// amount, leaving the balance unchanged.
func (p *Partner) Debit(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("debit of %s is negative", amount))
	}
	if p.creditLimit.LessThan(amount) {
		return fmt.Errorf("%w: available %s, required %s",
			ErrInsufficientCredit, p.creditLimit, amount)
	}

	p.creditLimit = p.creditLimit.Sub(amount)
	return nil
}

// Credit adds amount back to the available credit. Always succeeds for
// non-negative amounts; no upper bound is enforced.
func (p *Partner) Credit(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("credit of %s is negative", amount))
	}

	p.creditLimit = p.creditLimit.Add(amount)
	return nil
}

// Update replaces the partner's name and available credit, used by the
// partner-update operation of the API.
func (p *Partner) Update(name string, creditLimit kernel.Money) error {
	return errors.Join(
		p.setName(name),
		p.setCreditLimit(creditLimit),
	)
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setCreditLimit(creditLimit kernel.Money) error {
	if creditLimit.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("creditLimit",
			fmt.Errorf("%s is negative", creditLimit))
	}
	p.creditLimit = creditLimit
	return nil
}
