package api

import (
	"context"
	"errors"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

type CustomerResponse struct {
	ID            int64   `json:"id"`
	Code          string  `json:"codigo"`
	Name          string  `json:"nome"`
	Login         string  `json:"login"`
	TaxID         string  `json:"cpf_cnpj"`
	Email         string  `json:"email"`
	Group         string  `json:"grupo"`
	Active        string  `json:"cli_ativado"`
	InstalledAt   string  `json:"data_ins"`
	DeactivatedAt *string `json:"data_desativacao"`
}

type CustomersResponse struct {
	Customers  []CustomerResponse `json:"clientes"`
	Pagination Pagination         `json:"pagination"`
}

type CustomerEnvelope struct {
	Customer CustomerResponse `json:"cliente"`
}

// Customers lists customers page by page
// @Summary List customers
// @Tags customers
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param grupo query string false "Customer group"
// @Param ativo query string false "1 for active customers, anything else for inactive"
// @Success 200 {object} CustomersResponse
// @Router /api/v1/clientes [get]
// @Security ApiKeyAuth
func (h *Handler) Customers(ctx context.Context, req *RequestContext, _ []string) (Reply, error) {
	page, limit := parsePage(req.Query, 10)

	filter := entity.CustomerFilter{
		Group: sanitize(req.Query.Get("grupo")),
		Page:  page,
		Limit: limit,
	}

	if req.Query.Has("ativo") {
		filter.Active = ptr(req.Query.Get("ativo") == "1")
	}

	customers, total, err := h.s.Customers(ctx, filter)
	if err != nil {
		return Reply{}, err
	}

	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, h.customerToAPI(c))
	}

	return OK(CustomersResponse{
		Customers:  out,
		Pagination: newPagination(page, limit, total),
	}), nil
}

// Customer finds a customer by code, taken from the path or the "codigo" query parameter
// @Summary Get customer
// @Tags customers
// @Produce json
// @Param codigo path string true "Customer code"
// @Success 200 {object} CustomerEnvelope
// @Failure 400 {object} ErrorResponse "No code"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /api/v1/clientes/{codigo} [get]
// @Security ApiKeyAuth
func (h *Handler) Customer(ctx context.Context, req *RequestContext, params []string) (Reply, error) {
	code := req.Query.Get("codigo")
	if len(params) > 0 {
		code = params[0]
	}

	code = sanitize(code)
	if code == "" {
		return Reply{}, BadRequest(`Parâmetro "codigo" é obrigatório`)
	}

	c, err := h.s.Customer(ctx, code)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return Reply{}, NotFound("Cliente não encontrado")
		}

		return Reply{}, err
	}

	return OK(CustomerEnvelope{Customer: h.customerToAPI(c)}), nil
}

type CreateCustomerRequest struct {
	Code   Value `json:"codigo" validate:"required"`
	Name   Value `json:"nome" validate:"required"`
	Group  Value `json:"grupo"`
	Active Value `json:"ativo"`
	Login  Value `json:"login"`
	TaxID  Value `json:"cpf_cnpj"`
	Email  Value `json:"email"`
}

type CreateCustomerResponse struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"cliente_id"`
}

// CreateCustomer registers a customer
// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param CreateCustomerRequest body CreateCustomerRequest true "Customer"
// @Success 201 {object} CreateCustomerResponse
// @Failure 400 {object} ErrorResponse "Invalid body or missing fields"
// @Failure 409 {object} ErrorResponse "Customer code already exists"
// @Router /api/v1/clientes [post]
// @Security ApiKeyAuth
func (h *Handler) CreateCustomer(ctx context.Context, req *RequestContext, _ []string) (Reply, error) {
	var body CreateCustomerRequest

	err := decodeObject(req.Body, &body)
	if err != nil {
		return Reply{}, err
	}

	c, err := h.s.CreateCustomer(ctx, entity.Customer{
		Code:        sanitize(body.Code.String()),
		Name:        sanitize(body.Name.String()),
		Group:       sanitize(body.Group.String()),
		Active:      !body.Active.Empty(),
		Login:       sanitize(body.Login.String()),
		TaxID:       sanitize(body.TaxID.String()),
		Email:       sanitize(body.Email.String()),
		InstalledAt: h.now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrAlreadyExists):
			return Reply{}, Conflict("Cliente com este código já existe")
		case errors.Is(err, entity.ErrInvalidArgument):
			return Reply{}, BadRequest(msgMissingParams + "codigo, nome")
		default:
			return Reply{}, err
		}
	}

	return Created(CreateCustomerResponse{
		Message:    "Cliente criado com sucesso",
		CustomerID: c.ID,
	}), nil
}

func (h *Handler) customerToAPI(c entity.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Login:       c.Login,
		TaxID:       c.TaxID,
		Email:       c.Email,
		Group:       c.Group,
		Active:      "n",
		InstalledAt: c.InstalledAt.In(h.loc).Format(timestampLayout),
	}

	if c.Active {
		resp.Active = "s"
	}

	if c.DeactivatedAt != nil {
		resp.DeactivatedAt = ptr(c.DeactivatedAt.In(h.loc).Format(timestampLayout))
	}

	return resp
}
