package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusOpen    InvoiceStatus = "aberto"
	InvoiceStatusPaid    InvoiceStatus = "pago"
	InvoiceStatusOverdue InvoiceStatus = "vencido"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// IsPaid reports whether the status is the paid state. Every other stored value,
// including unknown ones, counts as not paid for the ledger transitions.
func (s InvoiceStatus) IsPaid() bool {
	return s == InvoiceStatusPaid
}

// Invoice is a billable charge ("título") owed by a customer.
type Invoice struct {
	ID            int64
	Ref           string // Public handle (uuid_lanc). Never the internal ID.
	CustomerLogin string
	CustomerTaxID string
	Description   string
	AmountDue     decimal.Decimal
	AmountPaid    decimal.NullDecimal
	DueDate       time.Time
	PaidAt        *time.Time
	Status        InvoiceStatus
	Collector     string
	PaymentMethod string
	Barcode       string // Linha digitável.
	OurNumber     string // Nosso número.
	Deleted       bool
	CreatedAt     time.Time

	// Filled by read queries only.
	CustomerName string
	PixCode      string
}

// Payment is what Receive writes onto an invoice.
type Payment struct {
	Amount    decimal.Decimal
	Method    string
	Collector string
	PaidAt    time.Time
}

// InvoiceChanges holds the editable, non-payment fields of an invoice.
// Nil fields are left untouched.
type InvoiceChanges struct {
	AmountDue   *decimal.Decimal
	DueDate     *time.Time
	Description *string
	Barcode     *string
	OurNumber   *string
}

func (c InvoiceChanges) IsEmpty() bool {
	return c.AmountDue == nil && c.DueDate == nil && c.Description == nil && c.Barcode == nil && c.OurNumber == nil
}

type InvoiceFilter struct {
	Status   InvoiceStatus
	Customer string // Login or tax ID.
	Page     uint64
	Limit    uint64
}

// InvoiceSearch matches invoices of any of the given logins or tax IDs.
type InvoiceSearch struct {
	Logins []string
	TaxIDs []string
	Status InvoiceStatus
}

// Receipt is the outcome of a successful Receive.
type Receipt struct {
	Ref       string
	Amount    decimal.Decimal
	Method    string
	Collector string
	EntryUUID string
}

// Reversal is the outcome of a successful Reverse.
type Reversal struct {
	Ref       string
	Amount    decimal.Decimal
	Actor     string
	EntryUUID string
}
