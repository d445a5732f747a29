package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
	"github.com/antoniocesar16/addon-api-mkauth/internal/repository"
)

type CustomerRepositoryTestSuite struct {
	suite.Suite
	repo *repository.Repository
	pool *pgxpool.Pool
}

func (ts *CustomerRepositoryTestSuite) SetupTest() {
	ts.repo, ts.pool = newRepository(ts.T())
}

func TestCustomerRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(CustomerRepositoryTestSuite))
}

func (ts *CustomerRepositoryTestSuite) TestCreateCustomer() {
	ctx := context.Background()

	c, err := ts.repo.CreateCustomer(ctx, entity.Customer{
		Code:        uuid.Must(uuid.NewV4()).String(),
		Name:        "Maria",
		Active:      true,
		InstalledAt: time.Now(),
	})
	ts.Require().NoError(err)
	ts.Require().NotZero(c.ID)

	ts.Run("duplicate_code", func() {
		_, err := ts.repo.CreateCustomer(ctx, entity.Customer{Code: c.Code, Name: "Other", InstalledAt: time.Now()})
		ts.Require().ErrorIs(err, entity.ErrAlreadyExists)
	})

	ts.Run("existing_customer", func() {
		got, err := ts.repo.Customer(ctx, c.Code)
		ts.Require().NoError(err)
		ts.Require().Equal("Maria", got.Name)
		ts.Require().True(got.Active)
		ts.Require().Nil(got.DeactivatedAt)
	})

	ts.Run("non_existing_customer", func() {
		_, err := ts.repo.Customer(ctx, "missing-"+c.Code)
		ts.Require().ErrorIs(err, entity.ErrNotFound)
	})
}

func (ts *CustomerRepositoryTestSuite) TestCustomers() {
	ctx := context.Background()
	group := "group-" + uuid.Must(uuid.NewV4()).String()

	for i := range 3 {
		_, err := ts.repo.CreateCustomer(ctx, entity.Customer{
			Code:        uuid.Must(uuid.NewV4()).String(),
			Name:        "Cliente",
			Group:       group,
			Active:      i > 0,
			InstalledAt: time.Now(),
		})
		ts.Require().NoError(err)
	}

	active := true

	list, total, err := ts.repo.Customers(ctx, entity.CustomerFilter{Group: group, Active: &active, Page: 1, Limit: 10})
	ts.Require().NoError(err)
	ts.Require().Equal(2, total)
	ts.Require().Len(list, 2)
	ts.Require().Greater(list[0].Code, list[1].Code)

	list, total, err = ts.repo.Customers(ctx, entity.CustomerFilter{Group: group, Page: 2, Limit: 2})
	ts.Require().NoError(err)
	ts.Require().Equal(3, total)
	ts.Require().Len(list, 1)
}

func (ts *CustomerRepositoryTestSuite) TestTicketCounters() {
	ctx := context.Background()

	group := "group-" + uuid.Must(uuid.NewV4()).String()
	login := "login-" + uuid.Must(uuid.NewV4()).String()

	_, err := ts.repo.CreateCustomer(ctx, entity.Customer{
		Code:        uuid.Must(uuid.NewV4()).String(),
		Name:        "João",
		Login:       login,
		Group:       group,
		Active:      true,
		InstalledAt: time.Date(1987, 3, 2, 10, 0, 0, 0, time.UTC),
	})
	ts.Require().NoError(err)

	for _, closedAt := range []time.Time{
		time.Date(1987, 3, 14, 9, 0, 0, 0, time.UTC),
		time.Date(1987, 3, 20, 9, 0, 0, 0, time.UTC),
	} {
		_, err = ts.pool.Exec(ctx,
			`INSERT INTO support_tickets (customer_login, status, closed_at) VALUES ($1, 'fechado', $2)`, login, closedAt)
		ts.Require().NoError(err)
	}

	_, err = ts.pool.Exec(ctx, `INSERT INTO support_tickets (customer_login, status) VALUES ($1, 'aberto')`, login)
	ts.Require().NoError(err)

	ts.Run("closed_in_period", func() {
		closed, err := ts.repo.ClosedTicketCount(ctx, "1987-03", group)
		ts.Require().NoError(err)
		ts.Require().Equal(2, closed)

		closed, err = ts.repo.ClosedTicketCount(ctx, "1987-04", group)
		ts.Require().NoError(err)
		ts.Require().Zero(closed)
	})

	ts.Run("closed_on_day", func() {
		closed, err := ts.repo.ClosedTicketCountActive(ctx, "1987-03-14")
		ts.Require().NoError(err)
		ts.Require().GreaterOrEqual(closed, 1)
	})

	ts.Run("open", func() {
		open, err := ts.repo.OpenTicketCount(ctx)
		ts.Require().NoError(err)
		ts.Require().GreaterOrEqual(open, 1)
	})

	ts.Run("group_report", func() {
		report, err := ts.repo.GroupReport(ctx, "1987-03")
		ts.Require().NoError(err)

		var found bool

		for _, g := range report {
			if g.Group == group {
				found = true

				ts.Require().Equal(entity.GroupReport{Group: group, ClosedTickets: 2, Installs: 1}, g)
			}
		}

		ts.Require().True(found)
	})
}
