package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
	"github.com/antoniocesar16/addon-api-mkauth/internal/mocks"
	"github.com/antoniocesar16/addon-api-mkauth/internal/service"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/broker"
)

func TestLedger_Receive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	inv := entity.Invoice{ID: 42, Ref: "abc", CustomerLogin: "joao", Status: entity.InvoiceStatusOpen}
	amount := decimal.RequireFromString("150.5")

	repo.EXPECT().InvoiceByRef(gomock.Any(), "abc").Return(inv, nil)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().PayInvoice(gomock.Any(), "abc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p entity.Payment) error {
			require.True(t, amount.Equal(p.Amount))
			require.Equal(t, "pix", p.Method)
			require.Equal(t, "c1", p.Collector)
			require.False(t, p.PaidAt.IsZero())

			return nil
		})
	repo.EXPECT().CreateCashEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e entity.CashEntry) (entity.CashEntry, error) {
			require.True(t, e.Credit.Valid)
			require.False(t, e.Debit.Valid)
			require.True(t, amount.Equal(e.Credit.Decimal))
			require.Equal(t, "c1", e.Actor)
			require.Equal(t, "Recebimento do titulo 42 via API / joao", e.Narrative)

			e.ID = 1

			return e, nil
		})
	producer.EXPECT().InvoiceReceived(gomock.Any(), inv, gomock.Any(), gomock.Any())

	l := service.NewLedger(repo, producer, time.UTC)

	receipt, err := l.Receive(context.Background(), "abc", amount, "pix", "c1")
	require.NoError(t, err)
	require.Equal(t, "abc", receipt.Ref)
	require.Equal(t, "150.50", receipt.Amount.StringFixed(2))
	require.Equal(t, "pix", receipt.Method)
	require.Equal(t, "c1", receipt.Collector)
	require.NotEmpty(t, receipt.EntryUUID)
}

func TestLedger_Receive_DefaultCollector(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)

	repo.EXPECT().InvoiceByRef(gomock.Any(), "abc").Return(entity.Invoice{ID: 1, Ref: "abc"}, nil)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().PayInvoice(gomock.Any(), "abc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p entity.Payment) error {
			require.Equal(t, entity.DefaultActor, p.Collector)
			return nil
		})
	repo.EXPECT().CreateCashEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e entity.CashEntry) (entity.CashEntry, error) {
			require.Equal(t, entity.DefaultActor, e.Actor)
			return e, nil
		})

	l := service.NewLedger(repo, broker.Nop{}, time.UTC)

	receipt, err := l.Receive(context.Background(), "abc", decimal.NewFromInt(10), "dinheiro", "")
	require.NoError(t, err)
	require.Equal(t, entity.DefaultActor, receipt.Collector)
}

func TestLedger_Receive_AlreadyPaid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	repo.EXPECT().InvoiceByRef(gomock.Any(), "abc").
		Return(entity.Invoice{ID: 1, Ref: "abc", Status: entity.InvoiceStatusPaid}, nil)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().PayInvoice(gomock.Any(), "abc", gomock.Any()).Return(entity.ErrNotFound)

	l := service.NewLedger(repo, producer, time.UTC)

	_, err := l.Receive(context.Background(), "abc", decimal.NewFromInt(10), "pix", "c1")
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)
}

func TestLedger_Receive_InvoiceNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	repo.EXPECT().InvoiceByRef(gomock.Any(), "nope").Return(entity.Invoice{}, entity.ErrNotFound)

	l := service.NewLedger(repo, producer, time.UTC)

	_, err := l.Receive(context.Background(), "nope", decimal.NewFromInt(10), "pix", "c1")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLedger_Receive_EmptyMethod(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	l := service.NewLedger(repo, producer, time.UTC)

	_, err := l.Receive(context.Background(), "abc", decimal.NewFromInt(10), "  ", "c1")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestLedger_Receive_EntryFailureIsReported(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	errInsert := errors.New("insert failed")

	repo.EXPECT().InvoiceByRef(gomock.Any(), "abc").Return(entity.Invoice{ID: 1, Ref: "abc"}, nil)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().PayInvoice(gomock.Any(), "abc", gomock.Any()).Return(nil)
	repo.EXPECT().CreateCashEntry(gomock.Any(), gomock.Any()).Return(entity.CashEntry{}, errInsert)

	l := service.NewLedger(repo, producer, time.UTC)

	_, err := l.Receive(context.Background(), "abc", decimal.NewFromInt(10), "pix", "c1")
	require.ErrorIs(t, err, errInsert)
}

func TestLedger_Reverse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	inv := entity.Invoice{ID: 7, Ref: "abc", CustomerLogin: "maria", Status: entity.InvoiceStatusPaid}

	repo.EXPECT().InvoiceByRef(gomock.Any(), "abc").Return(inv, nil)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().ReopenInvoice(gomock.Any(), "abc").Return(decimal.RequireFromString("87.35"), nil)
	repo.EXPECT().CreateCashEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e entity.CashEntry) (entity.CashEntry, error) {
			require.True(t, e.Debit.Valid)
			require.False(t, e.Credit.Valid)
			require.Equal(t, "87.35", e.Debit.Decimal.StringFixed(2))
			require.Equal(t, "u1", e.Actor)
			require.Equal(t, "Titulo 7 estornado via API / maria", e.Narrative)

			return e, nil
		})
	producer.EXPECT().InvoiceReversed(gomock.Any(), inv, gomock.Any(), gomock.Any())

	l := service.NewLedger(repo, producer, time.UTC)

	reversal, err := l.Reverse(context.Background(), "abc", "u1")
	require.NoError(t, err)
	require.Equal(t, "87.35", reversal.Amount.StringFixed(2))
	require.Equal(t, "u1", reversal.Actor)
}

func TestLedger_Reverse_NotPaid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLedgerRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	repo.EXPECT().InvoiceByRef(gomock.Any(), "abc").Return(entity.Invoice{ID: 1, Ref: "abc"}, nil)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().ReopenInvoice(gomock.Any(), "abc").Return(decimal.Decimal{}, entity.ErrNotFound)

	l := service.NewLedger(repo, producer, time.UTC)

	_, err := l.Reverse(context.Background(), "abc", "")
	require.ErrorIs(t, err, entity.ErrNotPaid)
}

func TestLedger_Receive_CanceledRequestStillCommits(t *testing.T) {
	t.Parallel()

	repo := newMemLedger(entity.Invoice{ID: 1, Ref: "abc", Status: entity.InvoiceStatusOpen})
	l := service.NewLedger(repo, broker.Nop{}, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Receive(ctx, "abc", decimal.NewFromInt(10), "pix", "c1")
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, repo.invoice("abc").Status)
}

func TestLedger_ConcurrentReceive(t *testing.T) {
	t.Parallel()

	repo := newMemLedger(entity.Invoice{ID: 1, Ref: "abc", Status: entity.InvoiceStatusOpen})
	l := service.NewLedger(repo, broker.Nop{}, time.UTC)

	const workers = 16

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ok   int
		paid int
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := l.Receive(context.Background(), "abc", decimal.NewFromInt(100), "pix", "c1")

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				ok++
			case errors.Is(err, entity.ErrAlreadyPaid):
				paid++
			default:
				t.Errorf("unexpected error: %s", err)
			}
		}()
	}

	wg.Wait()

	require.Equal(t, 1, ok)
	require.Equal(t, workers-1, paid)
	require.Len(t, repo.entries, 1)
}

func TestLedger_ReceiveReverseRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newMemLedger(entity.Invoice{ID: 1, Ref: "abc", Status: entity.InvoiceStatusOpen})
	l := service.NewLedger(repo, broker.Nop{}, time.UTC)
	ctx := context.Background()

	for range 3 {
		_, err := l.Receive(ctx, "abc", decimal.RequireFromString("59.90"), "pix", "c1")
		require.NoError(t, err)

		reversal, err := l.Reverse(ctx, "abc", "u1")
		require.NoError(t, err)
		require.Equal(t, "59.90", reversal.Amount.StringFixed(2))

		inv := repo.invoice("abc")
		require.Equal(t, entity.InvoiceStatusOpen, inv.Status)
		require.False(t, inv.AmountPaid.Valid)
		require.Nil(t, inv.PaidAt)
		require.Empty(t, inv.Collector)
		require.Empty(t, inv.PaymentMethod)
	}

	balance := decimal.Zero

	for _, e := range repo.entries {
		if e.Credit.Valid {
			balance = balance.Add(e.Credit.Decimal)
		}

		if e.Debit.Valid {
			balance = balance.Sub(e.Debit.Decimal)
		}
	}

	require.Len(t, repo.entries, 6)
	require.True(t, balance.IsZero())

	_, err := l.Reverse(ctx, "abc", "u1")
	require.ErrorIs(t, err, entity.ErrNotPaid)
	require.Len(t, repo.entries, 6)
}

func runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memLedger keeps invoices and cash entries in memory. InTx serializes
// transactions and restores the previous state when fn fails.
type memLedger struct {
	tx       sync.Mutex
	invoices map[string]entity.Invoice
	entries  []entity.CashEntry
}

func newMemLedger(invoices ...entity.Invoice) *memLedger {
	m := &memLedger{invoices: make(map[string]entity.Invoice)}

	for _, inv := range invoices {
		m.invoices[inv.Ref] = inv
	}

	return m
}

func (m *memLedger) invoice(ref string) entity.Invoice {
	m.tx.Lock()
	defer m.tx.Unlock()

	return m.invoices[ref]
}

func (m *memLedger) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.tx.Lock()
	defer m.tx.Unlock()

	invoices := make(map[string]entity.Invoice, len(m.invoices))
	for k, v := range m.invoices {
		invoices[k] = v
	}

	entries := len(m.entries)

	err := fn(ctx)
	if err != nil {
		m.invoices = invoices
		m.entries = m.entries[:entries]
	}

	return err
}

func (m *memLedger) InvoiceByRef(_ context.Context, ref string) (entity.Invoice, error) {
	m.tx.Lock()
	defer m.tx.Unlock()

	inv, ok := m.invoices[ref]
	if !ok {
		return entity.Invoice{}, entity.ErrNotFound
	}

	return inv, nil
}

func (m *memLedger) PayInvoice(_ context.Context, ref string, p entity.Payment) error {
	inv, ok := m.invoices[ref]
	if !ok || inv.Status.IsPaid() {
		return entity.ErrNotFound
	}

	paidAt := p.PaidAt
	inv.Status = entity.InvoiceStatusPaid
	inv.AmountPaid = decimal.NewNullDecimal(p.Amount)
	inv.PaidAt = &paidAt
	inv.Collector = p.Collector
	inv.PaymentMethod = p.Method
	m.invoices[ref] = inv

	return nil
}

func (m *memLedger) ReopenInvoice(_ context.Context, ref string) (decimal.Decimal, error) {
	inv, ok := m.invoices[ref]
	if !ok || !inv.Status.IsPaid() {
		return decimal.Decimal{}, entity.ErrNotFound
	}

	amount := inv.AmountPaid.Decimal
	inv.Status = entity.InvoiceStatusOpen
	inv.AmountPaid = decimal.NullDecimal{}
	inv.PaidAt = nil
	inv.Collector = ""
	inv.PaymentMethod = ""
	m.invoices[ref] = inv

	return amount, nil
}

func (m *memLedger) CreateCashEntry(_ context.Context, e entity.CashEntry) (entity.CashEntry, error) {
	err := e.Validate()
	if err != nil {
		return entity.CashEntry{}, err
	}

	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, e)

	return e, nil
}
