// Package partner provides the Partner aggregate: a business partner with a
// revolving credit line against which orders are placed.
//
// The aggregate owns the partner's available credit and exposes atomic
// debit/credit operations with a non-negativity guarantee. Serialization of
// concurrent debits against one partner is the persistence layer's job (row
// lock inside the unit of work); within a locked transaction the aggregate's
// check-and-subtract cannot interleave.
package partner
