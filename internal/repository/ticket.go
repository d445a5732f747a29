package repository

import (
	"context"
	"fmt"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

const (
	ticketStatusOpen   = "aberto"
	ticketStatusClosed = "fechado"
)

// Period matching follows the legacy reports: the pattern is searched anywhere in
// the "YYYY-MM-DD HH24:MI:SS" rendering of the timestamp.
const periodMatch = `to_char(%s, 'YYYY-MM-DD HH24:MI:SS') LIKE '%%' || $%d::text || '%%'`

func (r *Repository) OpenTicketCount(ctx context.Context) (int, error) {
	const q = `
	SELECT COUNT(*)
	FROM support_tickets t
	JOIN customers c ON c.login = t.customer_login
	WHERE t.status = $1 AND c.active`

	var total int

	err := r.conn(ctx).QueryRow(ctx, q, ticketStatusOpen).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count open tickets: %w", err)
	}

	return total, nil
}

// ClosedTicketCount counts tickets closed in period, optionally for one customer group.
func (r *Repository) ClosedTicketCount(ctx context.Context, period, group string) (int, error) {
	q := `
	SELECT COUNT(*)
	FROM support_tickets t
	LEFT JOIN customers c ON c.login = t.customer_login
	WHERE t.status = $1 AND ` + fmt.Sprintf(periodMatch, "t.closed_at", 2)

	args := []any{ticketStatusClosed, period}

	if group != "" {
		q += " AND c.customer_group = $3"
		args = append(args, group)
	}

	var total int

	err := r.conn(ctx).QueryRow(ctx, q, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count closed tickets: %w", err)
	}

	return total, nil
}

// ClosedTicketCountActive counts tickets of active customers closed in period.
func (r *Repository) ClosedTicketCountActive(ctx context.Context, period string) (int, error) {
	q := `
	SELECT COUNT(*)
	FROM support_tickets t
	JOIN customers c ON c.login = t.customer_login
	WHERE t.status = $1 AND c.active AND ` + fmt.Sprintf(periodMatch, "t.closed_at", 2)

	var total int

	err := r.conn(ctx).QueryRow(ctx, q, ticketStatusClosed, period).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count closed tickets of active customers: %w", err)
	}

	return total, nil
}

func (r *Repository) GroupReport(ctx context.Context, period string) ([]entity.GroupReport, error) {
	q := `
	SELECT
		g.customer_group,
		(SELECT COUNT(*) FROM support_tickets t JOIN customers c ON c.login = t.customer_login
			WHERE t.status = $1 AND c.customer_group = g.customer_group AND ` +
		fmt.Sprintf(periodMatch, "t.closed_at", 2) + `),
		(SELECT COUNT(*) FROM customers c
			WHERE c.customer_group = g.customer_group AND ` + fmt.Sprintf(periodMatch, "c.installed_at", 2) + `),
		(SELECT COUNT(*) FROM customers c
			WHERE c.customer_group = g.customer_group AND ` + fmt.Sprintf(periodMatch, "c.deactivated_at", 2) + `)
	FROM (SELECT DISTINCT customer_group FROM customers WHERE customer_group <> '') g
	ORDER BY g.customer_group`

	rows, err := r.conn(ctx).Query(ctx, q, ticketStatusClosed, period)
	if err != nil {
		return nil, fmt.Errorf("group report: %w", err)
	}
	defer rows.Close()

	report := make([]entity.GroupReport, 0)

	for rows.Next() {
		var g entity.GroupReport

		err = rows.Scan(&g.Group, &g.ClosedTickets, &g.Installs, &g.Deactivations)
		if err != nil {
			return nil, err
		}

		report = append(report, g)
	}

	return report, rows.Err()
}
