package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/shopspring/decimal"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

func (r *Repository) InvoiceByRef(ctx context.Context, ref string) (entity.Invoice, error) {
	q := selectInvoice + " WHERE ref = $1"
	return scanInvoice(r.conn(ctx).QueryRow(ctx, q, ref))
}

// PayInvoice writes the payment onto the invoice only while it is not paid.
// It returns entity.ErrNotFound when no row qualified.
func (r *Repository) PayInvoice(ctx context.Context, ref string, p entity.Payment) error {
	const q = `
	UPDATE invoices
	SET collector = $1, amount_paid = $2, paid_at = $3, status = $4, payment_method = $5
	WHERE ref = $6 AND status <> $4`

	result, err := r.conn(ctx).Exec(ctx, q, p.Collector, p.Amount, p.PaidAt, entity.InvoiceStatusPaid, p.Method, ref)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ReopenInvoice clears the payment of a paid invoice and returns the amount that
// had been paid, read from the locked row before the update.
// It returns entity.ErrNotFound when no paid invoice matched.
func (r *Repository) ReopenInvoice(ctx context.Context, ref string) (decimal.Decimal, error) {
	const q = `
	WITH prev AS (
		SELECT id, amount_paid FROM invoices WHERE ref = $1 AND status = $2 FOR UPDATE
	)
	UPDATE invoices i
	SET paid_at = NULL, amount_paid = NULL, collector = NULL, payment_method = NULL, status = $3
	FROM prev
	WHERE i.id = prev.id
	RETURNING prev.amount_paid`

	var amount decimal.Decimal

	err := r.conn(ctx).QueryRow(ctx, q, ref, entity.InvoiceStatusPaid, entity.InvoiceStatusOpen).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, entity.ErrNotFound
		}

		return decimal.Decimal{}, err
	}

	return amount, nil
}

// Invoice finds an invoice by internal ID or public ref.
func (r *Repository) Invoice(ctx context.Context, idOrRef string) (entity.Invoice, error) {
	stmt := selectInvoiceView().
		Where(sq.Or{sq.Expr("i.id::text = ?", idOrRef), sq.Eq{"i.ref": idOrRef}}).
		Limit(1)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return entity.Invoice{}, err
	}

	return scanInvoiceView(r.conn(ctx).QueryRow(ctx, sql, args...))
}

func (r *Repository) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	var total int

	countSQL, countArgs, err := applyInvoiceFilter(
		sq.Select("COUNT(*)").
			From("invoices i").
			PlaceholderFormat(sq.Dollar), f).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	err = r.conn(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	stmt := applyInvoiceFilter(selectInvoiceView(), f).
		OrderBy("i.id").
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit)

	invoices, err := r.queryInvoiceView(ctx, stmt)
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if f.Status != "" {
		stmt = stmt.Where(sq.Eq{"i.status": f.Status})
	}

	if f.Customer != "" {
		stmt = stmt.Where(sq.Or{sq.Eq{"i.customer_login": f.Customer}, sq.Eq{"i.customer_tax_id": f.Customer}})
	}

	return stmt
}

// CustomerInvoices lists the non-deleted invoices of a customer, by login or tax ID.
// An empty status matches every status.
func (r *Repository) CustomerInvoices(ctx context.Context, customer string, status entity.InvoiceStatus) ([]entity.Invoice, error) {
	stmt := selectInvoiceView().
		Where(sq.Or{sq.Eq{"i.customer_login": customer}, sq.Eq{"i.customer_tax_id": customer}}).
		Where(sq.Eq{"i.deleted": false}).
		OrderBy("i.id")

	if status != "" {
		stmt = stmt.Where(sq.Eq{"i.status": status})
	}

	return r.queryInvoiceView(ctx, stmt)
}

func (r *Repository) SearchInvoices(ctx context.Context, s entity.InvoiceSearch) ([]entity.Invoice, error) {
	var match sq.Or

	if len(s.Logins) > 0 {
		match = append(match, sq.Eq{"i.customer_login": s.Logins})
	}

	if len(s.TaxIDs) > 0 {
		match = append(match, sq.Eq{"i.customer_tax_id": s.TaxIDs})
	}

	if len(match) == 0 {
		return nil, fmt.Errorf("%w: no login or tax id to search", entity.ErrInvalidArgument)
	}

	stmt := selectInvoiceView().
		Where(match).
		Where(sq.Eq{"i.deleted": false}).
		OrderBy("i.id")

	if s.Status != "" {
		stmt = stmt.Where(sq.Eq{"i.status": s.Status})
	}

	return r.queryInvoiceView(ctx, stmt)
}

// UpdateInvoice edits the non-payment fields of an invoice.
func (r *Repository) UpdateInvoice(ctx context.Context, ref string, c entity.InvoiceChanges) error {
	set := map[string]any{}

	if c.AmountDue != nil {
		set["amount_due"] = *c.AmountDue
	}

	if c.DueDate != nil {
		set["due_date"] = *c.DueDate
	}

	if c.Description != nil {
		set["description"] = *c.Description
	}

	if c.Barcode != nil {
		set["barcode"] = *c.Barcode
	}

	if c.OurNumber != nil {
		set["our_number"] = *c.OurNumber
	}

	if len(set) == 0 {
		return fmt.Errorf("%w: nothing to update", entity.ErrInvalidArgument)
	}

	sql, args, err := sq.Update("invoices").
		SetMap(set).
		Where(sq.Eq{"ref": ref}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteInvoice(ctx context.Context, ref string) error {
	const q = `DELETE FROM invoices WHERE ref = $1`

	result, err := r.conn(ctx).Exec(ctx, q, ref)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) PixCode(ctx context.Context, ref string) (string, error) {
	const q = `SELECT qrcode FROM pix_qrcodes WHERE invoice_ref = $1 AND qrcode <> '' LIMIT 1`

	var code string

	err := r.conn(ctx).QueryRow(ctx, q, ref).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entity.ErrNotFound
		}

		return "", err
	}

	return code, nil
}

func (r *Repository) queryInvoiceView(ctx context.Context, stmt sq.SelectBuilder) ([]entity.Invoice, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0)

	for rows.Next() {
		inv, err := scanInvoiceView(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(invoiceDest(&inv)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}

func scanInvoiceView(row pgx.Row) (inv entity.Invoice, err error) {
	dest := append(invoiceDest(&inv), &inv.CustomerName, &inv.PixCode)

	err = row.Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}

func invoiceDest(inv *entity.Invoice) []any {
	return []any{
		&inv.ID,
		&inv.Ref,
		&inv.CustomerLogin,
		&inv.CustomerTaxID,
		&inv.Description,
		&inv.AmountDue,
		&inv.AmountPaid,
		&inv.DueDate,
		&inv.PaidAt,
		&inv.Status,
		(*zeronull.Text)(&inv.Collector),
		(*zeronull.Text)(&inv.PaymentMethod),
		&inv.Barcode,
		&inv.OurNumber,
		&inv.Deleted,
		&inv.CreatedAt,
	}
}
