package entity

// GroupReport aggregates one customer group over a period.
type GroupReport struct {
	Group         string `json:"grupo"`
	ClosedTickets int    `json:"chamados_fechados"`
	Installs      int    `json:"instalacoes"`
	Deactivations int    `json:"desativacoes"`
}
