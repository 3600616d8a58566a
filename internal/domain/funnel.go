package domain

// Registros mensais do funil de vendas, derivados das abas da planilha.
// Campos de métrica são ponteiros: nil significa "sem dado" (célula vazia,
// traço ou erro de fórmula), que não é a mesma coisa que zero.

// WebsessionToOfferMonth representa um mês da etapa Websession → Angebot,
// com as métricas observadas nas janelas de 30, 60 e 90 dias.
type WebsessionToOfferMonth struct {
	Month       string  `json:"month"`   // Rótulo do mês, ex: "Feb 26"
	ISODate     string  `json:"isoDate"` // Primeiro dia do mês em YYYY-MM-DD
	Websessions float64 `json:"websessions"`

	Offers30d *float64 `json:"offers_30d"`
	CR30d     *float64 `json:"cr_30d"` // Fração, ex: 0.136
	TTO30d    *float64 `json:"tto_30d"`
	Offers60d *float64 `json:"offers_60d"`
	CR60d     *float64 `json:"cr_60d"`
	TTO60d    *float64 `json:"tto_60d"`
	Offers90d *float64 `json:"offers_90d"`
	CR90d     *float64 `json:"cr_90d"`
	TTO90d    *float64 `json:"tto_90d"`
}

// OfferToDealMonth representa um mês da etapa Angebot → Auftrag.
// Diferente da primeira etapa, meses com zero Angebote são mantidos:
// zero aqui é um sinal real, não ausência de dado.
type OfferToDealMonth struct {
	Month   string  `json:"month"`
	ISODate string  `json:"isoDate"`
	Offers  float64 `json:"offers"`

	Deals30d     *float64 `json:"deals_30d"`
	CRDeal30d    *float64 `json:"cr_deal_30d"`
	Lifecycle30d *float64 `json:"lifecycle_30d"`
	Deals60d     *float64 `json:"deals_60d"`
	CRDeal60d    *float64 `json:"cr_deal_60d"`
	Lifecycle60d *float64 `json:"lifecycle_60d"`
	Deals90d     *float64 `json:"deals_90d"`
	CRDeal90d    *float64 `json:"cr_deal_90d"`
	Lifecycle90d *float64 `json:"lifecycle_90d"`
}

// WebsessionDistributionMonth representa a divisão das Websessions de um
// mês entre os consultores, com a participação de cada um como fração do
// total. Os campos seguem a ordem de Agents().
type WebsessionDistributionMonth struct {
	Month string `json:"month"`

	Lukas  *float64 `json:"lukas"`
	Sam    *float64 `json:"sam"`
	Tobias *float64 `json:"tobias"`
	Total  float64  `json:"total"`

	LukasShare  *float64 `json:"lukasP"`
	SamShare    *float64 `json:"samP"`
	TobiasShare *float64 `json:"tobiasP"`
}

// KPISummary agrega os indicadores de um escopo (time ou consultor) sobre
// o período com dados. As taxas de conversão são frações em [0,1] e ficam
// nulas quando o denominador é zero.
type KPISummary struct {
	Period           string   `json:"period"` // "<primeiro mês> – <último mês>" ou "–"
	TotalWebsessions float64  `json:"totalWS"`
	TotalOffers      float64  `json:"totalOffers"`
	TotalDeals       float64  `json:"totalDeals"`
	CRWsToOffer      *float64 `json:"crWS"`
	CROfferToDeal    *float64 `json:"crOffer"`
}

// NoDataPeriod é o valor sentinela do período quando não há nenhum mês com dados
const NoDataPeriod = "–"
