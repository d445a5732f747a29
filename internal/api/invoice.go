package api

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

const dateLayout = "2006-01-02"

type InvoiceResponse struct {
	ID            int64   `json:"id"`
	Ref           string  `json:"uuid"`
	Login         string  `json:"login"`
	TaxID         string  `json:"cpf_cnpj"`
	Name          string  `json:"nome"`
	Description   string  `json:"descricao"`
	Amount        string  `json:"valor"`
	AmountPaid    *string `json:"valorpag"`
	DueDate       string  `json:"datavenc"`
	PaidAt        *string `json:"datapag"`
	Status        string  `json:"status"`
	Collector     string  `json:"coletor"`
	PaymentMethod string  `json:"formapag"`
	Barcode       string  `json:"linhadig"`
	OurNumber     string  `json:"nossonum"`
	Pix           string  `json:"pix,omitempty"`
	PixLink       string  `json:"pix_link,omitempty"`
	PixQR         string  `json:"pix_qr,omitempty"`
}

type Pagination struct {
	CurrentPage uint64 `json:"current_page"`
	PerPage     uint64 `json:"per_page"`
	Total       int    `json:"total"`
	TotalPages  int    `json:"total_pages"`
}

type InvoicesResponse struct {
	Invoices   []InvoiceResponse `json:"titulos"`
	Pagination Pagination        `json:"pagination"`
}

type InvoiceListResponse struct {
	Total    int               `json:"total"`
	Invoices []InvoiceResponse `json:"titulos"`
}

type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"titulo"`
}

// Invoices lists invoices page by page
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param status query string false "aberto, pago or vencido"
// @Param cliente query string false "Customer login or CPF/CNPJ"
// @Success 200 {object} InvoicesResponse
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Router /api/v1/titulos [get]
// @Security ApiKeyAuth
func (h *Handler) Invoices(ctx context.Context, req *RequestContext, _ []string) (Reply, error) {
	page, limit := parsePage(req.Query, 20)

	filter := entity.InvoiceFilter{
		Status:   entity.InvoiceStatus(sanitize(req.Query.Get("status"))),
		Customer: sanitize(req.Query.Get("cliente")),
		Page:     page,
		Limit:    limit,
	}

	invoices, total, err := h.s.Invoices(ctx, filter)
	if err != nil {
		return Reply{}, err
	}

	return OK(InvoicesResponse{
		Invoices:   h.invoicesToAPI(invoices),
		Pagination: newPagination(page, limit, total),
	}), nil
}

// Invoice returns one invoice
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param ref path string true "Invoice id or uuid"
// @Success 200 {object} InvoiceEnvelope
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /api/v1/titulos/{ref} [get]
// @Security ApiKeyAuth
func (h *Handler) Invoice(ctx context.Context, _ *RequestContext, params []string) (Reply, error) {
	inv, err := h.s.Invoice(ctx, sanitize(params[0]))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return Reply{}, NotFound(msgInvoiceNotFound)
		}

		return Reply{}, err
	}

	return OK(InvoiceEnvelope{Invoice: h.invoiceToAPI(inv)}), nil
}

// CustomerInvoices lists the invoices of a customer
// @Summary List customer invoices
// @Tags invoices
// @Produce json
// @Param cliente path string true "Customer login or CPF/CNPJ"
// @Param status query string false "aberto, pago or vencido"
// @Success 200 {object} InvoiceListResponse
// @Failure 404 {object} ErrorResponse "No invoice for the customer"
// @Router /api/v1/titulos/cliente/{cliente} [get]
// @Security ApiKeyAuth
func (h *Handler) CustomerInvoices(ctx context.Context, req *RequestContext, params []string) (Reply, error) {
	customer := sanitize(params[0])
	if customer == "" {
		return Reply{}, BadRequest(`Parâmetro "cliente" é obrigatório`)
	}

	invoices, err := h.s.CustomerInvoices(ctx, customer, entity.InvoiceStatus(sanitize(req.Query.Get("status"))))
	if err != nil {
		return Reply{}, err
	}

	if len(invoices) == 0 {
		return Reply{}, NotFound("Nenhum título encontrado para este cliente")
	}

	return OK(InvoiceListResponse{Total: len(invoices), Invoices: h.invoicesToAPI(invoices)}), nil
}

// CustomerInvoicesByStatus lists the invoices of a customer in one status. An
// empty list is not an error.
func (h *Handler) CustomerInvoicesByStatus(status entity.InvoiceStatus) HandlerFunc {
	return func(ctx context.Context, _ *RequestContext, params []string) (Reply, error) {
		customer := sanitize(params[0])
		if customer == "" {
			return Reply{}, BadRequest(`Parâmetro "cliente" é obrigatório`)
		}

		invoices, err := h.s.CustomerInvoices(ctx, customer, status)
		if err != nil {
			return Reply{}, err
		}

		return OK(InvoiceListResponse{Total: len(invoices), Invoices: h.invoicesToAPI(invoices)}), nil
	}
}

type SearchInvoicesRequest struct {
	Logins Value `json:"login"`
	TaxIDs Value `json:"cpf_cnpj"`
	Status Value `json:"status"`
}

// SearchInvoices finds the invoices of several customers
// @Summary Search invoices
// @Tags invoices
// @Accept json
// @Produce json
// @Param SearchInvoicesRequest body SearchInvoicesRequest true "Logins and/or CPF/CNPJs"
// @Success 200 {object} InvoiceListResponse
// @Failure 400 {object} ErrorResponse "No login or CPF/CNPJ"
// @Router /api/v1/titulos/search [post]
// @Security ApiKeyAuth
func (h *Handler) SearchInvoices(ctx context.Context, req *RequestContext, _ []string) (Reply, error) {
	var body SearchInvoicesRequest

	err := decodeObject(req.Body, &body)
	if err != nil {
		return Reply{}, err
	}

	search := entity.InvoiceSearch{
		Logins: body.Logins.Strings(),
		TaxIDs: body.TaxIDs.Strings(),
		Status: entity.InvoiceStatus(sanitize(body.Status.String())),
	}

	invoices, err := h.s.SearchInvoices(ctx, search)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			return Reply{}, BadRequest("Pelo menos um login ou CPF/CNPJ deve ser fornecido")
		}

		return Reply{}, err
	}

	return OK(InvoiceListResponse{Total: len(invoices), Invoices: h.invoicesToAPI(invoices)}), nil
}

type UpdateInvoiceRequest struct {
	Amount      Value `json:"valor"`
	DueDate     Value `json:"datavenc"`
	Description Value `json:"descricao"`
	Barcode     Value `json:"linhadig"`
	OurNumber   Value `json:"nossonum"`
}

type UpdateInvoiceResponse struct {
	Message string        `json:"message"`
	Invoice UpdatedFields `json:"titulo"`
}

type UpdatedFields struct {
	Ref    string   `json:"uuid"`
	Fields []string `json:"campos_atualizados"`
}

// UpdateInvoice edits an invoice
// @Summary Update invoice
// @Description Edits amount, due date, description, barcode and our number. Payment fields are owned by receive and reverse.
// @Tags invoices
// @Accept json
// @Produce json
// @Param ref path string true "Invoice uuid"
// @Param UpdateInvoiceRequest body UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} UpdateInvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid body, invalid amount or no editable field"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /api/v1/titulos/{ref} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateInvoice(ctx context.Context, req *RequestContext, params []string) (Reply, error) {
	ref := sanitize(params[0])

	var body UpdateInvoiceRequest

	err := decodeObject(req.Body, &body)
	if err != nil {
		return Reply{}, err
	}

	var (
		changes entity.InvoiceChanges
		fields  []string
	)

	if body.Amount.Kind() != KindNull {
		amount, ok := body.Amount.Amount()
		if !ok || amount.IsNegative() {
			return Reply{}, BadRequest(msgInvalidAmount)
		}

		changes.AmountDue = &amount
		fields = append(fields, "valor")
	}

	if body.DueDate.Kind() != KindNull {
		due, err := time.ParseInLocation(dateLayout, body.DueDate.String(), h.loc)
		if err != nil {
			return Reply{}, BadRequest("Data de vencimento inválida, use AAAA-MM-DD")
		}

		changes.DueDate = &due
		fields = append(fields, "datavenc")
	}

	if body.Description.Kind() != KindNull {
		changes.Description = ptr(sanitize(body.Description.String()))
		fields = append(fields, "descricao")
	}

	if body.Barcode.Kind() != KindNull {
		changes.Barcode = ptr(sanitize(body.Barcode.String()))
		fields = append(fields, "linhadig")
	}

	if body.OurNumber.Kind() != KindNull {
		changes.OurNumber = ptr(sanitize(body.OurNumber.String()))
		fields = append(fields, "nossonum")
	}

	err = h.s.UpdateInvoice(ctx, ref, changes)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return Reply{}, NotFound(msgInvoiceNotFound)
		case errors.Is(err, entity.ErrInvalidArgument):
			return Reply{}, BadRequest("Nenhum campo válido fornecido para atualização")
		default:
			return Reply{}, err
		}
	}

	return OK(UpdateInvoiceResponse{
		Message: "Título atualizado com sucesso",
		Invoice: UpdatedFields{Ref: ref, Fields: fields},
	}), nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteInvoice removes an invoice
// @Summary Delete invoice
// @Tags invoices
// @Produce json
// @Param ref path string true "Invoice uuid"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /api/v1/titulos/{ref} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteInvoice(ctx context.Context, _ *RequestContext, params []string) (Reply, error) {
	err := h.s.DeleteInvoice(ctx, sanitize(params[0]))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return Reply{}, NotFound(msgInvoiceNotFound)
		}

		return Reply{}, err
	}

	return OK(MessageResponse{Message: "Título excluído com sucesso"}), nil
}

type PixResponse struct {
	Ref     string `json:"titulo"`
	QRCode  string `json:"qrcode"`
	PixLink string `json:"link_pix"`
}

// PixCode returns the PIX QR code of an invoice
// @Summary Get PIX QR code
// @Tags invoices
// @Produce json
// @Param ref path string true "Invoice uuid"
// @Success 200 {object} PixResponse
// @Failure 404 {object} ErrorResponse "No PIX QR code for the invoice"
// @Router /api/v1/pix/{ref} [get]
// @Security ApiKeyAuth
func (h *Handler) PixCode(ctx context.Context, _ *RequestContext, params []string) (Reply, error) {
	ref := sanitize(params[0])

	code, err := h.s.PixCode(ctx, ref)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return Reply{}, NotFound("QR Code PIX não encontrado para este título")
		}

		return Reply{}, err
	}

	return OK(PixResponse{Ref: ref, QRCode: code, PixLink: code}), nil
}

func (h *Handler) invoicesToAPI(invoices []entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, h.invoiceToAPI(inv))
	}

	return out
}

func (h *Handler) invoiceToAPI(inv entity.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		Ref:           inv.Ref,
		Login:         inv.CustomerLogin,
		TaxID:         inv.CustomerTaxID,
		Name:          inv.CustomerName,
		Description:   inv.Description,
		Amount:        inv.AmountDue.StringFixed(2),
		DueDate:       inv.DueDate.Format(dateLayout),
		Status:        inv.Status.String(),
		Collector:     inv.Collector,
		PaymentMethod: inv.PaymentMethod,
		Barcode:       inv.Barcode,
		OurNumber:     inv.OurNumber,
		Pix:           inv.PixCode,
		PixLink:       inv.PixCode,
		PixQR:         inv.PixCode,
	}

	if inv.AmountPaid.Valid {
		resp.AmountPaid = ptr(inv.AmountPaid.Decimal.StringFixed(2))
	}

	if inv.PaidAt != nil {
		resp.PaidAt = ptr(inv.PaidAt.In(h.loc).Format(timestampLayout))
	}

	return resp
}

// parsePage reads page and limit the way every listing does: page >= 1 and
// 1 <= limit <= 100, falling back to defaultLimit.
func parsePage(q url.Values, defaultLimit uint64) (page, limit uint64) {
	const maxLimit uint64 = 100

	page, err := strconv.ParseUint(q.Get("page"), 10, 64)
	if err != nil || page == 0 {
		page = 1
	}

	// OFFSET is a signed bigint.
	page = min(page, math.MaxInt64/maxLimit)

	limit, err = strconv.ParseUint(q.Get("limit"), 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	limit = min(max(limit, 1), maxLimit)

	return page, limit
}

func newPagination(page, limit uint64, total int) Pagination {
	return Pagination{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
	}
}

func ptr[T any](v T) *T {
	return &v
}
