package repository

import (
	"context"
	"fmt"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

// CreateCashEntry appends a ledger entry. Entries are never updated or deleted.
func (r *Repository) CreateCashEntry(ctx context.Context, e entity.CashEntry) (entity.CashEntry, error) {
	err := e.Validate()
	if err != nil {
		return entity.CashEntry{}, err
	}

	const q = `
	INSERT INTO cash_entries (
		uuid,
		actor,
		created_at,
		narrative,
		credit,
		debit,
		movement_type,
		account_category
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

	err = r.conn(ctx).QueryRow(
		ctx,
		q,
		e.UUID,
		e.Actor,
		e.CreatedAt,
		e.Narrative,
		e.Credit,
		e.Debit,
		e.MovementType,
		e.AccountCategory,
	).Scan(&e.ID)
	if err != nil {
		return entity.CashEntry{}, fmt.Errorf("insert cash entry: %w", err)
	}

	return e, nil
}

// CashEntriesByNarrative returns the entries whose narrative contains s, oldest first.
func (r *Repository) CashEntriesByNarrative(ctx context.Context, s string) ([]entity.CashEntry, error) {
	const q = `
	SELECT id, uuid, actor, created_at, narrative, credit, debit, movement_type, account_category
	FROM cash_entries
	WHERE narrative LIKE '%' || $1::text || '%'
	ORDER BY id`

	rows, err := r.conn(ctx).Query(ctx, q, s)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entity.CashEntry, 0)

	for rows.Next() {
		var e entity.CashEntry

		err = rows.Scan(
			&e.ID,
			&e.UUID,
			&e.Actor,
			&e.CreatedAt,
			&e.Narrative,
			&e.Credit,
			&e.Debit,
			&e.MovementType,
			&e.AccountCategory,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
