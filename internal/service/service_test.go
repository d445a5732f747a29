package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
	"github.com/antoniocesar16/addon-api-mkauth/internal/mocks"
	"github.com/antoniocesar16/addon-api-mkauth/internal/service"
)

func TestService_SearchInvoices(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo)

	_, err := s.SearchInvoices(context.Background(), entity.InvoiceSearch{Status: entity.InvoiceStatusOpen})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	search := entity.InvoiceSearch{Logins: []string{"joao"}}
	repo.EXPECT().SearchInvoices(context.Background(), search).Return([]entity.Invoice{{Ref: "abc"}}, nil)

	invoices, err := s.SearchInvoices(context.Background(), search)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
}

func TestService_UpdateInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo)

	err := s.UpdateInvoice(context.Background(), "abc", entity.InvoiceChanges{})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	negative := decimal.NewFromInt(-1)
	err = s.UpdateInvoice(context.Background(), "abc", entity.InvoiceChanges{AmountDue: &negative})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	desc := "Plano"
	changes := entity.InvoiceChanges{Description: &desc}

	repo.EXPECT().UpdateInvoice(context.Background(), "abc", changes).Return(entity.ErrNotFound)

	err = s.UpdateInvoice(context.Background(), "abc", changes)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_CreateCustomer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo)

	_, err := s.CreateCustomer(context.Background(), entity.Customer{Code: "10", Name: " "})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	c := entity.Customer{Code: "10", Name: "Maria"}
	repo.EXPECT().CreateCustomer(context.Background(), c).Return(entity.Customer{}, entity.ErrAlreadyExists)

	_, err = s.CreateCustomer(context.Background(), c)
	require.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestService_ClosedTicketCountOnDay(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo)

	repo.EXPECT().ClosedTicketCountActive(context.Background(), "2024-05-09").Return(3, nil)

	total, err := s.ClosedTicketCountOnDay(context.Background(), "09", "05", "2024")
	require.NoError(t, err)
	require.Equal(t, 3, total)
}

func TestService_WrapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo)

	errDB := errors.New("db down")

	repo.EXPECT().Invoice(context.Background(), "abc").Return(entity.Invoice{}, errDB)
	repo.EXPECT().PixCode(context.Background(), "abc").Return("", entity.ErrNotFound)
	repo.EXPECT().GroupReport(context.Background(), "2024-05").Return(nil, errDB)

	_, err := s.Invoice(context.Background(), "abc")
	require.ErrorIs(t, err, errDB)

	_, err = s.PixCode(context.Background(), "abc")
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = s.GroupReport(context.Background(), "2024-05")
	require.ErrorIs(t, err, errDB)
}
