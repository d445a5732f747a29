package repository

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	selectInvoice = `SELECT
		id,
		ref,
		customer_login,
		customer_tax_id,
		description,
		amount_due,
		amount_paid,
		due_date,
		paid_at,
		status,
		collector,
		payment_method,
		barcode,
		our_number,
		deleted,
		created_at
	FROM invoices`

	selectCustomer = `SELECT
		id,
		code,
		name,
		login,
		tax_id,
		email,
		customer_group,
		active,
		installed_at,
		deactivated_at
	FROM customers`
)

// invoiceViewColumns are the invoice columns plus the customer name and PIX code,
// in the order scanInvoiceView expects.
var invoiceViewColumns = []string{
	"i.id",
	"i.ref",
	"i.customer_login",
	"i.customer_tax_id",
	"i.description",
	"i.amount_due",
	"i.amount_paid",
	"i.due_date",
	"i.paid_at",
	"i.status",
	"i.collector",
	"i.payment_method",
	"i.barcode",
	"i.our_number",
	"i.deleted",
	"i.created_at",
	"COALESCE(c.name, '')",
	"COALESCE(p.qrcode, '')",
}

func selectInvoiceView() sq.SelectBuilder {
	return sq.Select(invoiceViewColumns...).
		From("invoices i").
		LeftJoin("customers c ON c.login = i.customer_login AND c.login <> ''").
		LeftJoin("pix_qrcodes p ON p.invoice_ref = i.ref").
		PlaceholderFormat(sq.Dollar)
}
