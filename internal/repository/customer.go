package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

func (r *Repository) Customer(ctx context.Context, code string) (entity.Customer, error) {
	q := selectCustomer + " WHERE code = $1 LIMIT 1"
	return scanCustomer(r.conn(ctx).QueryRow(ctx, q, code))
}

func (r *Repository) Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, int, error) {
	var total int

	countSQL, countArgs, err := applyCustomerFilter(
		sq.Select("COUNT(*)").From("customers").PlaceholderFormat(sq.Dollar), f).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	err = r.conn(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	stmt := applyCustomerFilter(sq.Select(
		"id",
		"code",
		"name",
		"login",
		"tax_id",
		"email",
		"customer_group",
		"active",
		"installed_at",
		"deactivated_at",
	).From("customers").PlaceholderFormat(sq.Dollar), f).
		OrderBy("code DESC").
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := make([]entity.Customer, 0, f.Limit)

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}

		customers = append(customers, c)
	}

	return customers, total, rows.Err()
}

func applyCustomerFilter(stmt sq.SelectBuilder, f entity.CustomerFilter) sq.SelectBuilder {
	if f.Group != "" {
		stmt = stmt.Where(sq.Eq{"customer_group": f.Group})
	}

	if f.Active != nil {
		stmt = stmt.Where(sq.Eq{"active": *f.Active})
	}

	return stmt
}

// CreateCustomer inserts a customer and returns it with its ID.
// A duplicate code yields entity.ErrAlreadyExists.
func (r *Repository) CreateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	const q = `
	INSERT INTO customers (code, name, login, tax_id, email, customer_group, active, installed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

	err := r.conn(ctx).QueryRow(ctx, q,
		c.Code,
		c.Name,
		c.Login,
		c.TaxID,
		c.Email,
		c.Group,
		c.Active,
		c.InstalledAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Customer{}, fmt.Errorf("customer %q: %w", c.Code, entity.ErrAlreadyExists)
		}

		return entity.Customer{}, err
	}

	return c, nil
}

func scanCustomer(row pgx.Row) (c entity.Customer, err error) {
	err = row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Login,
		&c.TaxID,
		&c.Email,
		&c.Group,
		&c.Active,
		&c.InstalledAt,
		&c.DeactivatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Customer{}, entity.ErrNotFound
		}

		return entity.Customer{}, err
	}

	return c, nil
}
