package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=ledger.go -destination=../mocks/ledger.go -package=mocks

type LedgerRepository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	InvoiceByRef(ctx context.Context, ref string) (entity.Invoice, error)
	PayInvoice(ctx context.Context, ref string, p entity.Payment) error
	ReopenInvoice(ctx context.Context, ref string) (decimal.Decimal, error)
	CreateCashEntry(ctx context.Context, e entity.CashEntry) (entity.CashEntry, error)
}

type Producer interface {
	InvoiceReceived(ctx context.Context, inv entity.Invoice, r entity.Receipt, at time.Time)
	InvoiceReversed(ctx context.Context, inv entity.Invoice, r entity.Reversal, at time.Time)
}

// Ledger moves invoices between open and paid. Every transition updates the
// invoice and appends one cash entry in the same transaction.
type Ledger struct {
	repo     LedgerRepository
	producer Producer
	now      func() time.Time
}

func NewLedger(repo LedgerRepository, producer Producer, loc *time.Location) *Ledger {
	return &Ledger{
		repo:     repo,
		producer: producer,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// Receive pays an open invoice. A paid invoice yields entity.ErrAlreadyPaid and
// nothing is written.
func (l *Ledger) Receive(ctx context.Context, ref string, amount decimal.Decimal, method, collector string) (entity.Receipt, error) {
	ctx = context.WithoutCancel(ctx)

	if strings.TrimSpace(method) == "" {
		return entity.Receipt{}, fmt.Errorf("%w: payment method is empty", entity.ErrInvalidArgument)
	}

	if collector == "" {
		collector = entity.DefaultActor
	}

	inv, err := l.repo.InvoiceByRef(ctx, ref)
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("get invoice %q: %w", ref, err)
	}

	now := l.now()

	var entry entity.CashEntry

	err = l.repo.InTx(ctx, func(ctx context.Context) error {
		err := l.repo.PayInvoice(ctx, ref, entity.Payment{
			Amount:    amount,
			Method:    method,
			Collector: collector,
			PaidAt:    now,
		})
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("invoice %q: %w", ref, entity.ErrAlreadyPaid)
			}

			return fmt.Errorf("pay invoice %q: %w", ref, err)
		}

		entry, err = l.repo.CreateCashEntry(ctx, entity.NewCreditEntry(inv, collector, amount, now))
		if err != nil {
			return fmt.Errorf("create credit entry for invoice %q: %w", ref, err)
		}

		return nil
	})
	if err != nil {
		return entity.Receipt{}, err
	}

	receipt := entity.Receipt{
		Ref:       ref,
		Amount:    amount,
		Method:    method,
		Collector: collector,
		EntryUUID: entry.UUID.String(),
	}

	slog.InfoContext(ctx, "invoice received",
		"invoice_id", inv.ID, "ref", ref, "amount", amount.StringFixed(2), "method", method, "collector", collector)

	l.producer.InvoiceReceived(ctx, inv, receipt, now)

	return receipt, nil
}

// Reverse reopens a paid invoice and books a debit equal to the amount that had
// been paid. An invoice that is not paid yields entity.ErrNotPaid.
func (l *Ledger) Reverse(ctx context.Context, ref, actor string) (entity.Reversal, error) {
	ctx = context.WithoutCancel(ctx)

	if actor == "" {
		actor = entity.DefaultActor
	}

	inv, err := l.repo.InvoiceByRef(ctx, ref)
	if err != nil {
		return entity.Reversal{}, fmt.Errorf("get invoice %q: %w", ref, err)
	}

	now := l.now()

	var (
		amount decimal.Decimal
		entry  entity.CashEntry
	)

	err = l.repo.InTx(ctx, func(ctx context.Context) error {
		var err error

		amount, err = l.repo.ReopenInvoice(ctx, ref)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("invoice %q: %w", ref, entity.ErrNotPaid)
			}

			return fmt.Errorf("reopen invoice %q: %w", ref, err)
		}

		entry, err = l.repo.CreateCashEntry(ctx, entity.NewDebitEntry(inv, actor, amount, now))
		if err != nil {
			return fmt.Errorf("create debit entry for invoice %q: %w", ref, err)
		}

		return nil
	})
	if err != nil {
		return entity.Reversal{}, err
	}

	reversal := entity.Reversal{
		Ref:       ref,
		Amount:    amount,
		Actor:     actor,
		EntryUUID: entry.UUID.String(),
	}

	slog.InfoContext(ctx, "invoice reversed",
		"invoice_id", inv.ID, "ref", ref, "amount", amount.StringFixed(2), "actor", actor)

	l.producer.InvoiceReversed(ctx, inv, reversal, now)

	return reversal, nil
}
