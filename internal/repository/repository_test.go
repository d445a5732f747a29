package repository_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
	"github.com/antoniocesar16/addon-api-mkauth/internal/repository"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/postgres"
)

func TestRepository_PayInvoice(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()
	inv := createInvoice(t, pool, newInvoice())
	paidAt := time.Now().Truncate(time.Second)

	err := repo.PayInvoice(ctx, inv.Ref, entity.Payment{
		Amount:    decimal.RequireFromString("100.00"),
		Method:    "pix",
		Collector: "c1",
		PaidAt:    paidAt,
	})
	require.NoError(t, err)

	got, err := repo.InvoiceByRef(ctx, inv.Ref)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, got.Status)
	require.True(t, got.AmountPaid.Valid)
	require.Equal(t, "100.00", got.AmountPaid.Decimal.StringFixed(2))
	require.NotNil(t, got.PaidAt)
	require.True(t, paidAt.Equal(*got.PaidAt))
	require.Equal(t, "c1", got.Collector)
	require.Equal(t, "pix", got.PaymentMethod)

	// A paid invoice does not qualify again.
	err = repo.PayInvoice(ctx, inv.Ref, entity.Payment{Amount: decimal.NewFromInt(1), Method: "pix", PaidAt: paidAt})
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.PayInvoice(ctx, uuid.Must(uuid.NewV4()).String(), entity.Payment{PaidAt: paidAt})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_ReopenInvoice(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()
	inv := createInvoice(t, pool, newInvoice())

	_, err := repo.ReopenInvoice(ctx, inv.Ref)
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.PayInvoice(ctx, inv.Ref, entity.Payment{
		Amount:    decimal.RequireFromString("87.35"),
		Method:    "boleto",
		Collector: "c1",
		PaidAt:    time.Now(),
	})
	require.NoError(t, err)

	amount, err := repo.ReopenInvoice(ctx, inv.Ref)
	require.NoError(t, err)
	require.Equal(t, "87.35", amount.StringFixed(2))

	got, err := repo.InvoiceByRef(ctx, inv.Ref)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusOpen, got.Status)
	require.False(t, got.AmountPaid.Valid)
	require.Nil(t, got.PaidAt)
	require.Empty(t, got.Collector)
	require.Empty(t, got.PaymentMethod)

	_, err = repo.ReopenInvoice(ctx, inv.Ref)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_InTx_RollsBack(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()
	inv := createInvoice(t, pool, newInvoice())
	errBoom := errors.New("boom")

	err := repo.InTx(ctx, func(ctx context.Context) error {
		err := repo.PayInvoice(ctx, inv.Ref, entity.Payment{
			Amount: decimal.NewFromInt(10),
			Method: "pix",
			PaidAt: time.Now(),
		})
		require.NoError(t, err)

		_, err = repo.CreateCashEntry(ctx, entity.NewCreditEntry(inv, "c1", decimal.NewFromInt(10), time.Now()))
		require.NoError(t, err)

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := repo.InvoiceByRef(ctx, inv.Ref)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusOpen, got.Status)

	entries, err := repo.CashEntriesByNarrative(ctx, inv.CustomerLogin)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRepository_ConcurrentPayments(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()
	inv := createInvoice(t, pool, newInvoice())

	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		paid      int
		conflicts int
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := repo.InTx(ctx, func(ctx context.Context) error {
				err := repo.PayInvoice(ctx, inv.Ref, entity.Payment{
					Amount: decimal.NewFromInt(50),
					Method: "pix",
					PaidAt: time.Now(),
				})
				if err != nil {
					return err
				}

				_, err = repo.CreateCashEntry(ctx, entity.NewCreditEntry(inv, "c1", decimal.NewFromInt(50), time.Now()))

				return err
			})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				paid++
			case errors.Is(err, entity.ErrNotFound):
				conflicts++
			default:
				t.Errorf("unexpected error: %s", err)
			}
		}()
	}

	wg.Wait()

	require.Equal(t, 1, paid)
	require.Equal(t, workers-1, conflicts)

	entries, err := repo.CashEntriesByNarrative(ctx, inv.CustomerLogin)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRepository_ConcurrentReversals(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()
	inv := createInvoice(t, pool, newInvoice())

	err := repo.PayInvoice(ctx, inv.Ref, entity.Payment{
		Amount: decimal.RequireFromString("42.10"),
		Method: "pix",
		PaidAt: time.Now(),
	})
	require.NoError(t, err)

	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		reopened  []decimal.Decimal
		conflicts int
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			var amount decimal.Decimal

			err := repo.InTx(ctx, func(ctx context.Context) error {
				var err error

				amount, err = repo.ReopenInvoice(ctx, inv.Ref)
				if err != nil {
					return err
				}

				_, err = repo.CreateCashEntry(ctx, entity.NewDebitEntry(inv, "u1", amount, time.Now()))

				return err
			})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				reopened = append(reopened, amount)
			case errors.Is(err, entity.ErrNotFound):
				conflicts++
			default:
				t.Errorf("unexpected error: %s", err)
			}
		}()
	}

	wg.Wait()

	require.Len(t, reopened, 1)
	require.Equal(t, "42.10", reopened[0].StringFixed(2))
	require.Equal(t, workers-1, conflicts)

	entries, err := repo.CashEntriesByNarrative(ctx, inv.CustomerLogin)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, entries[0].Debit.Valid)
	require.Equal(t, "42.10", entries[0].Debit.Decimal.StringFixed(2))
}

func TestRepository_CashEntriesAreAppendOnly(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()
	inv := createInvoice(t, pool, newInvoice())

	entry, err := repo.CreateCashEntry(ctx, entity.NewDebitEntry(inv, "u1", decimal.NewFromInt(5), time.Now()))
	require.NoError(t, err)
	require.NotZero(t, entry.ID)

	_, err = pool.Exec(ctx, `UPDATE cash_entries SET actor = 'x' WHERE id = $1`, entry.ID)
	require.Error(t, err)

	_, err = pool.Exec(ctx, `DELETE FROM cash_entries WHERE id = $1`, entry.ID)
	require.Error(t, err)

	both := entity.NewCreditEntry(inv, "u1", decimal.NewFromInt(5), time.Now())
	both.Debit = decimal.NewNullDecimal(decimal.NewFromInt(5))

	_, err = repo.CreateCashEntry(ctx, both)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestRepository_InvoiceReads(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()

	login := "login-" + uuid.Must(uuid.NewV4()).String()

	open := newInvoice()
	open.CustomerLogin = login
	open = createInvoice(t, pool, open)

	overdue := newInvoice()
	overdue.CustomerLogin = login
	overdue.Status = entity.InvoiceStatusOverdue
	overdue = createInvoice(t, pool, overdue)

	deleted := newInvoice()
	deleted.CustomerLogin = login
	deleted.Deleted = true
	createInvoice(t, pool, deleted)

	_, err := pool.Exec(ctx, `INSERT INTO pix_qrcodes (invoice_ref, qrcode) VALUES ($1, $2)`, open.Ref, "000201pix")
	require.NoError(t, err)

	got, err := repo.Invoice(ctx, open.Ref)
	require.NoError(t, err)
	require.Equal(t, open.ID, got.ID)
	require.Equal(t, "000201pix", got.PixCode)

	byID, err := repo.Invoice(ctx, strconv.FormatInt(open.ID, 10))
	require.NoError(t, err)
	require.Equal(t, open.Ref, byID.Ref)

	_, err = repo.Invoice(ctx, "missing-"+uuid.Must(uuid.NewV4()).String())
	require.ErrorIs(t, err, entity.ErrNotFound)

	all, err := repo.CustomerInvoices(ctx, login, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	overdues, err := repo.CustomerInvoices(ctx, login, entity.InvoiceStatusOverdue)
	require.NoError(t, err)
	require.Len(t, overdues, 1)
	require.Equal(t, overdue.Ref, overdues[0].Ref)

	page, total, err := repo.Invoices(ctx, entity.InvoiceFilter{Customer: login, Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, page, 2)

	page, _, err = repo.Invoices(ctx, entity.InvoiceFilter{Customer: login, Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)

	found, err := repo.SearchInvoices(ctx, entity.InvoiceSearch{Logins: []string{login}, Status: entity.InvoiceStatusOpen})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, open.Ref, found[0].Ref)

	code, err := repo.PixCode(ctx, open.Ref)
	require.NoError(t, err)
	require.Equal(t, "000201pix", code)

	_, err = repo.PixCode(ctx, overdue.Ref)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_UpdateAndDeleteInvoice(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()
	inv := createInvoice(t, pool, newInvoice())

	amount := decimal.RequireFromString("199.90")
	due := time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC)
	desc := "Plano 500MB"

	err := repo.UpdateInvoice(ctx, inv.Ref, entity.InvoiceChanges{AmountDue: &amount, DueDate: &due, Description: &desc})
	require.NoError(t, err)

	got, err := repo.InvoiceByRef(ctx, inv.Ref)
	require.NoError(t, err)
	require.Equal(t, "199.90", got.AmountDue.StringFixed(2))
	require.Equal(t, "2030-01-31", got.DueDate.Format("2006-01-02"))
	require.Equal(t, desc, got.Description)
	require.Equal(t, entity.InvoiceStatusOpen, got.Status)

	err = repo.UpdateInvoice(ctx, "missing", entity.InvoiceChanges{Description: &desc})
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.DeleteInvoice(ctx, inv.Ref)
	require.NoError(t, err)

	err = repo.DeleteInvoice(ctx, inv.Ref)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func newRepository(t *testing.T) (*repository.Repository, *pgxpool.Pool) {
	t.Helper()

	if testDSN == "" {
		t.Skip("no postgres: set TEST_POSTGRES_DSN or run docker")
	}

	pool, err := postgres.Connect(context.Background(), testDSN, 20)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool), pool
}

func newInvoice() entity.Invoice {
	return entity.Invoice{
		Ref:           uuid.Must(uuid.NewV4()).String(),
		CustomerLogin: "login-" + uuid.Must(uuid.NewV4()).String(),
		CustomerTaxID: "123.456.789-00",
		Description:   "Mensalidade",
		AmountDue:     decimal.RequireFromString("100.00"),
		DueDate:       time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Status:        entity.InvoiceStatusOpen,
	}
}

func createInvoice(t *testing.T, pool *pgxpool.Pool, inv entity.Invoice) entity.Invoice {
	t.Helper()

	const q = `
	INSERT INTO invoices (ref, customer_login, customer_tax_id, description, amount_due, due_date, status, deleted)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

	err := pool.QueryRow(context.Background(), q,
		inv.Ref,
		inv.CustomerLogin,
		inv.CustomerTaxID,
		inv.Description,
		inv.AmountDue,
		inv.DueDate,
		inv.Status,
		inv.Deleted,
	).Scan(&inv.ID)
	require.NoError(t, err)

	return inv
}
