package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Invoice(ctx context.Context, idOrRef string) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	CustomerInvoices(ctx context.Context, customer string, status entity.InvoiceStatus) ([]entity.Invoice, error)
	SearchInvoices(ctx context.Context, s entity.InvoiceSearch) ([]entity.Invoice, error)
	UpdateInvoice(ctx context.Context, ref string, c entity.InvoiceChanges) error
	DeleteInvoice(ctx context.Context, ref string) error
	PixCode(ctx context.Context, ref string) (string, error)

	Customer(ctx context.Context, code string) (entity.Customer, error)
	Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, int, error)
	CreateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error)

	OpenTicketCount(ctx context.Context) (int, error)
	ClosedTicketCount(ctx context.Context, period, group string) (int, error)
	ClosedTicketCountActive(ctx context.Context, period string) (int, error)
	GroupReport(ctx context.Context, period string) ([]entity.GroupReport, error)
}

// Service serves the plain reads and writes that carry no state transition.
type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Invoice(ctx context.Context, idOrRef string) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, idOrRef)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %q: %w", idOrRef, err)
	}

	return inv, nil
}

func (s *Service) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	invoices, total, err := s.repo.Invoices(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, total, nil
}

// CustomerInvoices lists the invoices of a customer login or tax ID.
// An empty status lists every status.
func (s *Service) CustomerInvoices(ctx context.Context, customer string, status entity.InvoiceStatus) ([]entity.Invoice, error) {
	invoices, err := s.repo.CustomerInvoices(ctx, customer, status)
	if err != nil {
		return nil, fmt.Errorf("list invoices of customer %q: %w", customer, err)
	}

	return invoices, nil
}

func (s *Service) SearchInvoices(ctx context.Context, search entity.InvoiceSearch) ([]entity.Invoice, error) {
	if len(search.Logins) == 0 && len(search.TaxIDs) == 0 {
		return nil, fmt.Errorf("%w: no login or tax id to search", entity.ErrInvalidArgument)
	}

	invoices, err := s.repo.SearchInvoices(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search invoices: %w", err)
	}

	return invoices, nil
}

// UpdateInvoice edits the non-payment fields of an invoice.
func (s *Service) UpdateInvoice(ctx context.Context, ref string, c entity.InvoiceChanges) error {
	if c.IsEmpty() {
		return fmt.Errorf("%w: no field to update", entity.ErrInvalidArgument)
	}

	if c.AmountDue != nil && c.AmountDue.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", entity.ErrInvalidArgument, c.AmountDue)
	}

	err := s.repo.UpdateInvoice(ctx, ref, c)
	if err != nil {
		return fmt.Errorf("update invoice %q: %w", ref, err)
	}

	return nil
}

func (s *Service) DeleteInvoice(ctx context.Context, ref string) error {
	err := s.repo.DeleteInvoice(ctx, ref)
	if err != nil {
		return fmt.Errorf("delete invoice %q: %w", ref, err)
	}

	return nil
}

func (s *Service) PixCode(ctx context.Context, ref string) (string, error) {
	code, err := s.repo.PixCode(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("get pix code of invoice %q: %w", ref, err)
	}

	return code, nil
}

func (s *Service) Customer(ctx context.Context, code string) (entity.Customer, error) {
	c, err := s.repo.Customer(ctx, code)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("get customer %q: %w", code, err)
	}

	return c, nil
}

func (s *Service) Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, int, error) {
	customers, total, err := s.repo.Customers(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	return customers, total, nil
}

func (s *Service) CreateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	if strings.TrimSpace(c.Code) == "" || strings.TrimSpace(c.Name) == "" {
		return entity.Customer{}, fmt.Errorf("%w: customer code and name are required", entity.ErrInvalidArgument)
	}

	c, err := s.repo.CreateCustomer(ctx, c)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return c, nil
}

func (s *Service) OpenTicketCount(ctx context.Context) (int, error) {
	total, err := s.repo.OpenTicketCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count open tickets: %w", err)
	}

	return total, nil
}

func (s *Service) ClosedTicketCount(ctx context.Context, period, group string) (int, error) {
	total, err := s.repo.ClosedTicketCount(ctx, period, group)
	if err != nil {
		return 0, fmt.Errorf("count tickets closed in %q: %w", period, err)
	}

	return total, nil
}

// ClosedTicketCountOnDay counts tickets of active customers closed on the given day.
func (s *Service) ClosedTicketCountOnDay(ctx context.Context, day, month, year string) (int, error) {
	period := year + "-" + month + "-" + day

	total, err := s.repo.ClosedTicketCountActive(ctx, period)
	if err != nil {
		return 0, fmt.Errorf("count tickets closed on %q: %w", period, err)
	}

	return total, nil
}

func (s *Service) GroupReport(ctx context.Context, period string) ([]entity.GroupReport, error) {
	report, err := s.repo.GroupReport(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("group report for %q: %w", period, err)
	}

	return report, nil
}
