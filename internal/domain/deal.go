package domain

// Deal é um negócio do CRM já formatado para exibição no modal do
// dashboard: valores monetários e datas chegam como strings prontas,
// com "–" como placeholder quando o dado não existe.
type Deal struct {
	Name           string `json:"name"`
	WebsessionDate string `json:"websessionDate"` // DD.MM.YYYY ou "–"
	Amount         string `json:"amount"`         // Ex: "1.235 €" ou "–"
	Stage          string `json:"stage"`
	Permalink      string `json:"permalink,omitempty"`
}

// DealList é a resposta da consulta de deals por consultor e mês
type DealList struct {
	Deals []Deal `json:"deals"`
	Total int    `json:"total"`
}
