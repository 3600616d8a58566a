package domain

// ScopeReport reúne tudo que o dashboard mostra para um escopo: as duas
// sequências mensais do funil, os KPIs agregados e os insights narrativos.
type ScopeReport struct {
	WsToOffer   []WebsessionToOfferMonth `json:"wsToOffer"`
	OfferToDeal []OfferToDealMonth       `json:"offerToDeal"`
	KPIs        KPISummary               `json:"kpis"`
	Insights    []string                 `json:"insights"`
}

// DashboardResponse é a resposta agregada completa: um snapshot consistente
// recalculado da planilha a cada requisição. Individuals é indexado pelo
// nome completo do consultor (AgentInfo.DisplayName).
type DashboardResponse struct {
	Teamview    ScopeReport                   `json:"teamview"`
	Individuals map[string]ScopeReport        `json:"individuals"`
	WsDist      []WebsessionDistributionMonth `json:"wsDist"`
	LastUpdated *string                       `json:"lastUpdated"` // YYYY-MM-DD ou null
}
