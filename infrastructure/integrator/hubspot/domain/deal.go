package domain

// Estruturas da busca de deals da API CRM v3 do HubSpot

// Nomes das propriedades consultadas
const (
	PropertyDealName  = "dealname"
	PropertyAmount    = "amount"
	PropertyDealStage = "dealstage"
	PropertyOwnerID   = "hubspot_owner_id"
)

// Filter é um critério individual da busca
type Filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
	HighValue    string `json:"highValue,omitempty"`
}

// FilterGroup agrupa filtros combinados com AND
type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

// Sort define a ordenação dos resultados
type Sort struct {
	PropertyName string `json:"propertyName"`
	Direction    string `json:"direction"`
}

// SearchRequest é o corpo da busca de deals
type SearchRequest struct {
	FilterGroups []FilterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Sorts        []Sort        `json:"sorts,omitempty"`
	Limit        int           `json:"limit"`
}

// SearchResult é um deal retornado pela busca. As propriedades chegam
// sempre como strings, inclusive valores numéricos e timestamps.
type SearchResult struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// SearchResponse é a resposta da busca de deals
type SearchResponse struct {
	Total   int            `json:"total"`
	Results []SearchResult `json:"results"`
}
