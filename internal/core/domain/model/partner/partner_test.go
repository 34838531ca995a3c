package partner_test

import (
	"testing"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/partner"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newPartner(t *testing.T, credit string) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "ACME Corp", mustMoney(t, credit))
	require.NoError(t, err)
	return p
}

func TestNewPartner(t *testing.T) {
	t.Run("creates a valid partner", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "ACME Corp", mustMoney(t, "1000.00"))

		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.Equal(t, "ACME Corp", p.Name())
		assert.Equal(t, "1000.00", p.CreditLimit().String())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := partner.NewPartner(kernel.NewUUID(), "", mustMoney(t, "1000.00"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a negative credit limit", func(t *testing.T) {
		_, err := partner.NewPartner(kernel.NewUUID(), "ACME Corp", mustMoney(t, "-1.00"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires a valid identifier", func(t *testing.T) {
		_, err := partner.NewPartner(kernel.UUID{}, "ACME Corp", mustMoney(t, "1000.00"))

		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p partner.Partner
		assert.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)
	})
}

func TestPartner_Debit(t *testing.T) {
	t.Run("subtracts the amount", func(t *testing.T) {
		p := newPartner(t, "1000.00")

		require.NoError(t, p.Debit(mustMoney(t, "500.00")))

		assert.Equal(t, "500.00", p.CreditLimit().String())
	})

	t.Run("allows debiting down to exactly zero", func(t *testing.T) {
		p := newPartner(t, "500.00")

		require.NoError(t, p.Debit(mustMoney(t, "500.00")))

		assert.Equal(t, "0.00", p.CreditLimit().String())
		assert.False(t, p.CreditLimit().IsNegative())
	})

	t.Run("fails when the balance does not cover the amount", func(t *testing.T) {
		p := newPartner(t, "1000.00")

		err := p.Debit(mustMoney(t, "1500.00"))

		require.ErrorIs(t, err, partner.ErrInsufficientCredit)
		assert.Equal(t, "1000.00", p.CreditLimit().String(), "balance must be unchanged")
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		p := newPartner(t, "1000.00")

		err := p.Debit(mustMoney(t, "-100.00"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "1000.00", p.CreditLimit().String())
	})
}

func TestPartner_Credit(t *testing.T) {
	t.Run("adds the amount back", func(t *testing.T) {
		p := newPartner(t, "500.00")

		require.NoError(t, p.Credit(mustMoney(t, "500.00")))

		assert.Equal(t, "1000.00", p.CreditLimit().String())
	})

	t.Run("has no upper bound", func(t *testing.T) {
		p := newPartner(t, "1000.00")

		require.NoError(t, p.Credit(mustMoney(t, "9000.00")))

		assert.Equal(t, "10000.00", p.CreditLimit().String())
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		p := newPartner(t, "1000.00")

		assert.ErrorIs(t, p.Credit(mustMoney(t, "-1.00")), errs.ErrValueIsInvalid)
	})
}

func TestPartner_HasCreditFor(t *testing.T) {
	p := newPartner(t, "1000.00")

	assert.True(t, p.HasCreditFor(mustMoney(t, "1000.00")))
	assert.True(t, p.HasCreditFor(mustMoney(t, "999.99")))
	assert.False(t, p.HasCreditFor(mustMoney(t, "1000.01")))
}

func TestPartner_Update(t *testing.T) {
	t.Run("replaces name and credit", func(t *testing.T) {
		p := newPartner(t, "1000.00")

		require.NoError(t, p.Update("Globex", mustMoney(t, "2500.00")))

		assert.Equal(t, "Globex", p.Name())
		assert.Equal(t, "2500.00", p.CreditLimit().String())
	})

	t.Run("keeps validation rules", func(t *testing.T) {
		p := newPartner(t, "1000.00")

		assert.Error(t, p.Update("", mustMoney(t, "2500.00")))
		assert.Error(t, p.Update("Globex", mustMoney(t, "-1.00")))
	})
}

func TestPartner_CreditNeverNegative(t *testing.T) {
	// Any finite sequence of debits and credits must keep the balance >= 0:
	// failed debits leave it untouched.
	p := newPartner(t, "100.00")

	ops := []struct {
		debit  bool
		amount string
	}{
		{true, "60.00"},
		{true, "60.00"}, // fails, only 40.00 left
		{false, "20.00"},
		{true, "60.00"},
		{true, "0.01"}, // fails, balance is exactly 0.00
	}

	for _, op := range ops {
		if op.debit {
			_ = p.Debit(mustMoney(t, op.amount))
		} else {
			_ = p.Credit(mustMoney(t, op.amount))
		}
		assert.False(t, p.CreditLimit().IsNegative())
	}

	assert.Equal(t, "0.00", p.CreditLimit().String())
}
