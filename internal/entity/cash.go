package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	MovementTypeAutomatic  = "aut"
	AccountCategoryDefault = "Outros"

	// DefaultActor is recorded when the caller does not name a collector or user.
	DefaultActor = "API"
)

// CashEntry is an append-only cash ledger movement ("caixa").
// Exactly one of Credit and Debit is set.
type CashEntry struct {
	ID              int64
	UUID            uuid.UUID
	Actor           string
	CreatedAt       time.Time
	Narrative       string
	Credit          decimal.NullDecimal
	Debit           decimal.NullDecimal
	MovementType    string
	AccountCategory string
}

// NewCreditEntry books the receipt of an invoice payment.
func NewCreditEntry(inv Invoice, actor string, amount decimal.Decimal, at time.Time) CashEntry {
	return CashEntry{
		UUID:            uuid.Must(uuid.NewV4()),
		Actor:           actor,
		CreatedAt:       at,
		Narrative:       fmt.Sprintf("Recebimento do titulo %d via API / %s", inv.ID, inv.CustomerLogin),
		Credit:          decimal.NewNullDecimal(amount),
		MovementType:    MovementTypeAutomatic,
		AccountCategory: AccountCategoryDefault,
	}
}

// NewDebitEntry books the reversal of an invoice payment.
func NewDebitEntry(inv Invoice, actor string, amount decimal.Decimal, at time.Time) CashEntry {
	return CashEntry{
		UUID:            uuid.Must(uuid.NewV4()),
		Actor:           actor,
		CreatedAt:       at,
		Narrative:       fmt.Sprintf("Titulo %d estornado via API / %s", inv.ID, inv.CustomerLogin),
		Debit:           decimal.NewNullDecimal(amount),
		MovementType:    MovementTypeAutomatic,
		AccountCategory: AccountCategoryDefault,
	}
}

func (e CashEntry) Validate() error {
	if e.Credit.Valid == e.Debit.Valid {
		return fmt.Errorf("%w: cash entry %s must have exactly one of credit or debit", ErrInvalidArgument, e.UUID)
	}

	return nil
}
