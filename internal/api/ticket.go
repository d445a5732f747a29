package api

import (
	"context"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

type OpenTicketsResponse struct {
	Open int `json:"chamados_abertos"`
}

type ClosedTicketsResponse struct {
	Closed int     `json:"chamados_fechados"`
	Period string  `json:"periodo"`
	Group  *string `json:"grupo"`
}

type ClosedTicketsOnDayResponse struct {
	Closed int    `json:"chamados_fechados_dia"`
	Date   string `json:"data"`
}

type GroupReportResponse struct {
	Report []entity.GroupReport `json:"relatorio_por_grupo"`
	Period string               `json:"periodo"`
}

// OpenTickets counts the open tickets of active customers
// @Summary Open tickets
// @Tags tickets
// @Produce json
// @Success 200 {object} OpenTicketsResponse
// @Router /api/v1/chamados/abertos [get]
// @Security ApiKeyAuth
func (h *Handler) OpenTickets(ctx context.Context, _ *RequestContext, _ []string) (Reply, error) {
	total, err := h.s.OpenTicketCount(ctx)
	if err != nil {
		return Reply{}, err
	}

	return OK(OpenTicketsResponse{Open: total}), nil
}

// ClosedTickets counts the tickets closed in a period
// @Summary Closed tickets
// @Tags tickets
// @Produce json
// @Param data query string false "Period, YYYY-MM by default the current month"
// @Param grupo query string false "Customer group"
// @Success 200 {object} ClosedTicketsResponse
// @Router /api/v1/chamados/fechados [get]
// @Security ApiKeyAuth
func (h *Handler) ClosedTickets(ctx context.Context, req *RequestContext, _ []string) (Reply, error) {
	period := h.period(req)

	var group *string
	if g := sanitize(req.Query.Get("grupo")); g != "" {
		group = &g
	}

	total, err := h.s.ClosedTicketCount(ctx, period, deref(group))
	if err != nil {
		return Reply{}, err
	}

	return OK(ClosedTicketsResponse{Closed: total, Period: period, Group: group}), nil
}

// ClosedTicketsOnDay counts the tickets of active customers closed on a day
// @Summary Tickets closed on a day
// @Tags tickets
// @Produce json
// @Param dia query string false "Day, today by default"
// @Param mes query string false "Month, current by default"
// @Param ano query string false "Year, current by default"
// @Success 200 {object} ClosedTicketsOnDayResponse
// @Router /api/v1/chamados/fechados/dia [get]
// @Security ApiKeyAuth
func (h *Handler) ClosedTicketsOnDay(ctx context.Context, req *RequestContext, _ []string) (Reply, error) {
	today := h.now()

	day := queryOr(req, "dia", today.Format("02"))
	month := queryOr(req, "mes", today.Format("01"))
	year := queryOr(req, "ano", today.Format("2006"))

	total, err := h.s.ClosedTicketCountOnDay(ctx, day, month, year)
	if err != nil {
		return Reply{}, err
	}

	return OK(ClosedTicketsOnDayResponse{Closed: total, Date: day + "/" + month + "/" + year}), nil
}

// GroupReport aggregates closed tickets, installs and deactivations per customer group
// @Summary Report per group
// @Tags tickets
// @Produce json
// @Param data query string false "Period, YYYY-MM by default the current month"
// @Success 200 {object} GroupReportResponse
// @Router /api/v1/relatorios/grupos [get]
// @Security ApiKeyAuth
func (h *Handler) GroupReport(ctx context.Context, req *RequestContext, _ []string) (Reply, error) {
	period := h.period(req)

	report, err := h.s.GroupReport(ctx, period)
	if err != nil {
		return Reply{}, err
	}

	return OK(GroupReportResponse{Report: report, Period: period}), nil
}

// period is the "data" query parameter, or the current month.
func (h *Handler) period(req *RequestContext) string {
	return queryOr(req, "data", h.now().Format("2006-01"))
}

func queryOr(req *RequestContext, key, fallback string) string {
	if !req.Query.Has(key) {
		return fallback
	}

	return sanitize(req.Query.Get(key))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
