package api

import (
	"net/http"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

// Register adds every route to rt. Literal routes come before the patterns that
// would also match them.
func (h *Handler) Register(rt *Router) {
	rt.Handle(http.MethodGet, InfoPath, h.Info)

	rt.Handle(http.MethodGet, "/api/v1/clientes", h.Customers)
	rt.Handle(http.MethodGet, "/api/v1/clientes/buscar", h.Customer)
	rt.Handle(http.MethodGet, "/api/v1/clientes/{codigo}", h.Customer)
	rt.Handle(http.MethodPost, "/api/v1/clientes", h.CreateCustomer)

	rt.Handle(http.MethodGet, "/api/v1/chamados/abertos", h.OpenTickets)
	rt.Handle(http.MethodGet, "/api/v1/chamados/fechados", h.ClosedTickets)
	rt.Handle(http.MethodGet, "/api/v1/chamados/fechados/dia", h.ClosedTicketsOnDay)
	rt.Handle(http.MethodGet, "/api/v1/relatorios/grupos", h.GroupReport)

	rt.Handle(http.MethodGet, "/api/v1/titulos", h.Invoices)
	rt.Handle(http.MethodGet, "/api/v1/titulos/cliente/{cliente}/abertos", h.CustomerInvoicesByStatus(entity.InvoiceStatusOpen))
	rt.Handle(http.MethodGet, "/api/v1/titulos/cliente/{cliente}/vencidos", h.CustomerInvoicesByStatus(entity.InvoiceStatusOverdue))
	rt.Handle(http.MethodGet, "/api/v1/titulos/cliente/{cliente}/pagos", h.CustomerInvoicesByStatus(entity.InvoiceStatusPaid))
	rt.Handle(http.MethodGet, "/api/v1/titulos/cliente/{cliente}", h.CustomerInvoices)
	rt.Handle(http.MethodPost, "/api/v1/titulos/search", h.SearchInvoices)
	rt.Handle(http.MethodPut, "/api/v1/titulos/{ref}/receber", h.Receive)
	rt.Handle(http.MethodPut, "/api/v1/titulos/{ref}/estornar", h.Reverse)
	rt.Handle(http.MethodPut, "/api/v1/titulos/{ref}", h.UpdateInvoice)
	rt.Handle(http.MethodGet, "/api/v1/titulos/{ref}", h.Invoice)
	rt.Handle(http.MethodDelete, "/api/v1/titulos/{ref}", h.DeleteInvoice)

	rt.Handle(http.MethodGet, "/api/v1/pix/{ref}", h.PixCode)

	// Legacy script names still used by old integrations.
	rt.Handle(http.MethodGet, "/buscacliente.php", h.Customer)
	rt.Handle(http.MethodGet, "/chamadoaberto.php", h.OpenTickets)
	rt.Handle(http.MethodGet, "/chamadofechado.php", h.ClosedTickets)
	rt.Handle(http.MethodGet, "/chamadofechadodia.php", h.ClosedTicketsOnDay)
}
