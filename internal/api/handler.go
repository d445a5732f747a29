package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

// @title MK-Auth API
// @version v1
// @description Billing API over the MK-Auth customer, invoice and support ticket records
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const (
	apiName    = "MK-Auth API"
	apiVersion = "v1"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Ledger interface {
	Receive(ctx context.Context, ref string, amount decimal.Decimal, method, collector string) (entity.Receipt, error)
	Reverse(ctx context.Context, ref, actor string) (entity.Reversal, error)
}

type Service interface {
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
	ClosedTicketCountOnDay(ctx context.Context, day, month, year string) (int, error)
	GroupReport(ctx context.Context, period string) ([]entity.GroupReport, error)
}

type Handler struct {
	ledger Ledger
	s      Service
	loc    *time.Location
}

func NewHandler(ledger Ledger, s Service, loc *time.Location) *Handler {
	return &Handler{
		ledger: ledger,
		s:      s,
		loc:    loc,
	}
}

func (h *Handler) now() time.Time {
	return time.Now().In(h.loc)
}

type InfoResponse struct {
	APIName   string            `json:"api_name"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

// Info returns the API metadata
// @Summary API info
// @Description Returns the API name, version and the main endpoints. No API key required.
// @Tags info
// @Produce json
// @Success 200 {object} InfoResponse
// @Router /api/v1/info [get]
func (h *Handler) Info(_ context.Context, _ *RequestContext, _ []string) (Reply, error) {
	return OK(InfoResponse{
		APIName:   apiName,
		Version:   apiVersion,
		Timestamp: h.now().Format(timestampLayout),
		Endpoints: map[string]string{
			"GET /api/v1/clientes":                "Listar clientes",
			"GET /api/v1/clientes/{codigo}":       "Buscar cliente por código",
			"POST /api/v1/clientes":               "Criar novo cliente",
			"GET /api/v1/chamados/abertos":        "Chamados abertos",
			"GET /api/v1/chamados/fechados":       "Chamados fechados",
			"GET /api/v1/chamados/fechados/dia":   "Chamados fechados no dia",
			"GET /api/v1/relatorios/grupos":       "Relatório por grupo",
			"GET /api/v1/titulos":                 "Listar títulos",
			"PUT /api/v1/titulos/{uuid}/receber":  "Receber título",
			"PUT /api/v1/titulos/{uuid}/estornar": "Estornar título",
		},
	}), nil
}

type ReceiveRequest struct {
	Amount    Value `json:"valor" validate:"required"`
	Method    Value `json:"forma" validate:"required"`
	Collector Value `json:"coletor"`
}

type ReceiveResponse struct {
	Message string         `json:"message"`
	Invoice ReceiptPayload `json:"titulo"`
}

type ReceiptPayload struct {
	Ref       string `json:"uuid"`
	Amount    string `json:"valor_pago"`
	Method    string `json:"forma_pagamento"`
	Collector string `json:"coletor"`
}

// Receive pays an open invoice
// @Summary Receive invoice
// @Description Marks an open invoice as paid and books the credit in the cash ledger, atomically
// @Tags invoices
// @Accept json
// @Produce json
// @Param ref path string true "Invoice uuid"
// @Param ReceiveRequest body ReceiveRequest true "Payment"
// @Success 200 {object} ReceiveResponse
// @Failure 400 {object} ErrorResponse "Invalid body, missing fields, amount out of range or invoice already paid"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/v1/titulos/{ref}/receber [put]
// @Security ApiKeyAuth
func (h *Handler) Receive(ctx context.Context, req *RequestContext, params []string) (Reply, error) {
	ref := sanitize(params[0])

	var body ReceiveRequest

	err := decodeObject(req.Body, &body)
	if err != nil {
		return Reply{}, err
	}

	collector := sanitize(body.Collector.String())
	if body.Collector.Empty() {
		collector = entity.DefaultActor
	}

	amount, ok := body.Amount.Amount()
	if !ok {
		return Reply{}, BadRequest(msgInvalidAmount)
	}

	receipt, err := h.ledger.Receive(ctx, ref, amount, sanitize(body.Method.String()), collector)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return Reply{}, NotFound(msgInvoiceNotFound)
		case errors.Is(err, entity.ErrAlreadyPaid):
			return Reply{}, BadRequest("Título já foi pago ou não encontrado")
		case errors.Is(err, entity.ErrInvalidArgument):
			return Reply{}, BadRequest(msgMissingParams + "forma")
		default:
			return Reply{}, err
		}
	}

	return OK(ReceiveResponse{
		Message: "Título recebido com sucesso",
		Invoice: ReceiptPayload{
			Ref:       receipt.Ref,
			Amount:    receipt.Amount.StringFixed(2),
			Method:    receipt.Method,
			Collector: receipt.Collector,
		},
	}), nil
}

type ReverseRequest struct {
	Actor Value `json:"usuario"`
}

type ReverseResponse struct {
	Message string          `json:"message"`
	Invoice ReversalPayload `json:"titulo"`
}

type ReversalPayload struct {
	Ref    string `json:"uuid"`
	Amount string `json:"valor_estornado"`
	Actor  string `json:"usuario"`
}

// Reverse reopens a paid invoice
// @Summary Reverse invoice
// @Description Reopens a paid invoice and books a debit of the paid amount in the cash ledger, atomically
// @Tags invoices
// @Accept json
// @Produce json
// @Param ref path string true "Invoice uuid"
// @Param ReverseRequest body ReverseRequest false "Reversal"
// @Success 200 {object} ReverseResponse
// @Failure 400 {object} ErrorResponse "Invoice not paid"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/v1/titulos/{ref}/estornar [put]
// @Security ApiKeyAuth
func (h *Handler) Reverse(ctx context.Context, req *RequestContext, params []string) (Reply, error) {
	ref := sanitize(params[0])

	var body ReverseRequest

	decodeOptional(req.Body, &body)

	actor := sanitize(body.Actor.String())
	if body.Actor.Empty() {
		actor = entity.DefaultActor
	}

	reversal, err := h.ledger.Reverse(ctx, ref, actor)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return Reply{}, NotFound(msgInvoiceNotFound)
		case errors.Is(err, entity.ErrNotPaid):
			return Reply{}, BadRequest("Título não está pago ou não encontrado")
		default:
			return Reply{}, err
		}
	}

	return OK(ReverseResponse{
		Message: "Título estornado com sucesso",
		Invoice: ReversalPayload{
			Ref:    reversal.Ref,
			Amount: reversal.Amount.StringFixed(2),
			Actor:  reversal.Actor,
		},
	}), nil
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		slog.ErrorContext(r.Context(), "write health response", "error", err)
	}
}
