package reporting

import (
	"fmt"

	"github.com/vfg2006/sales-cockpit-api/internal/domain"
)

// bestAvailable resolve o valor de uma métrica multi-janela preferindo a
// observação mais longa: 90 dias quando existe, senão 60, senão 30, senão
// zero. A janela mais longa é a mais completa; a ausência nas janelas
// curtas significa "ainda não observado", não zero.
//
// A resolução é por linha: um mês pode resolver via 90 dias e outro via 30.
func bestAvailable(v90, v60, v30 *float64) float64 {
	switch {
	case v90 != nil:
		return *v90
	case v60 != nil:
		return *v60
	case v30 != nil:
		return *v30
	default:
		return 0
	}
}

// CalculateKPIs agrega os indicadores de um escopo a partir das duas
// sequências mensais do funil. Sequências vazias produzem um resumo com o
// período sentinela e campos zerados/nulos, nunca um erro.
func CalculateKPIs(wsToOffer []domain.WebsessionToOfferMonth, offerToDeal []domain.OfferToDealMonth) domain.KPISummary {
	wsRows := withWebsessions(wsToOffer)
	odRows := withOffers(offerToDeal)

	summary := domain.KPISummary{Period: domain.NoDataPeriod}

	// Período: do primeiro ao último mês com Websessions, na ordem da
	// planilha (sem reordenar)
	if len(wsRows) > 0 {
		summary.Period = fmt.Sprintf("%s – %s", wsRows[0].Month, wsRows[len(wsRows)-1].Month)
	}

	var totalBestOffers float64
	for _, r := range wsRows {
		summary.TotalWebsessions += r.Websessions
		totalBestOffers += bestAvailable(r.Offers90d, r.Offers60d, r.Offers30d)
	}

	var totalBestDeals float64
	for _, r := range odRows {
		summary.TotalOffers += r.Offers
		totalBestDeals += bestAvailable(r.Deals90d, r.Deals60d, r.Deals30d)
	}
	summary.TotalDeals = totalBestDeals

	if summary.TotalWebsessions > 0 {
		cr := totalBestOffers / summary.TotalWebsessions
		summary.CRWsToOffer = &cr
	}

	if summary.TotalOffers > 0 {
		cr := totalBestDeals / summary.TotalOffers
		summary.CROfferToDeal = &cr
	}

	return summary
}

// withWebsessions filtra os meses com volume primário positivo. O parser já
// garante isso para a etapa 1, mas o agregador não depende dessa garantia.
func withWebsessions(rows []domain.WebsessionToOfferMonth) []domain.WebsessionToOfferMonth {
	result := make([]domain.WebsessionToOfferMonth, 0, len(rows))
	for _, r := range rows {
		if r.Websessions > 0 {
			result = append(result, r)
		}
	}
	return result
}

// withOffers filtra os meses com Angebote positivos. Meses com zero
// Angebote existem nas sequências (os gráficos os mostram), mas ficam fora
// dos KPIs.
func withOffers(rows []domain.OfferToDealMonth) []domain.OfferToDealMonth {
	result := make([]domain.OfferToDealMonth, 0, len(rows))
	for _, r := range rows {
		if r.Offers > 0 {
			result = append(result, r)
		}
	}
	return result
}
