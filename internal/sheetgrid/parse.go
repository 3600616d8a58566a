package sheetgrid

import (
	"github.com/vfg2006/sales-cockpit-api/internal/domain"
)

// Mapas de colunas das três seções da planilha (índices 0-based, contrato
// estável com o layout das abas).
//
// Websession → Angebot e Angebot → Auftrag compartilham o mesmo layout:
// B=mês (serial), C=métrica primária, depois três blocos de
// (volume, CR, duração) para as janelas de 30/60/90 dias.
const (
	funnelMonthCol   = 1
	funnelPrimaryCol = 2
	funnelMetricsCol = 3 // Primeiro bloco; cada janela ocupa 3 colunas
)

// Aba "Aufteilung Websessions": A=mês, B..D=contagem por consultor,
// E=total, H..J=participação por consultor.
const (
	distMonthCol = 0
	distCountCol = 1
	distTotalCol = 4
	distShareCol = 7
)

// cellAt devolve a célula de índice idx, ou nil quando a linha é curta.
// A API da planilha omite células vazias no fim de cada linha.
func cellAt(row []any, idx int) any {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// ParseWebsessionToOffer converte a grade da seção Websession → Angebot em
// registros mensais. Linhas sem mês resolvível ou sem Websessions (nulo ou
// zero) são descartadas em silêncio: linhas de cabeçalho e meses futuros
// vazios fazem parte do range fixo buscado.
//
// A ordem das linhas é preservada e meses duplicados na origem não são
// deduplicados.
func ParseWebsessionToOffer(grid [][]any) []domain.WebsessionToOfferMonth {
	result := make([]domain.WebsessionToOfferMonth, 0, len(grid))

	for _, row := range grid {
		month := SerialToMonthLabel(cellAt(row, funnelMonthCol))
		if month == "" {
			continue
		}

		websessions := ToNumber(cellAt(row, funnelPrimaryCol))
		if websessions == nil || *websessions == 0 {
			continue
		}

		result = append(result, domain.WebsessionToOfferMonth{
			Month:       month,
			ISODate:     SerialToISODate(cellAt(row, funnelMonthCol)),
			Websessions: *websessions,
			Offers30d:   ToNumber(cellAt(row, funnelMetricsCol)),
			CR30d:       ToNumber(cellAt(row, funnelMetricsCol+1)),
			TTO30d:      ToNumber(cellAt(row, funnelMetricsCol+2)),
			Offers60d:   ToNumber(cellAt(row, funnelMetricsCol+3)),
			CR60d:       ToNumber(cellAt(row, funnelMetricsCol+4)),
			TTO60d:      ToNumber(cellAt(row, funnelMetricsCol+5)),
			Offers90d:   ToNumber(cellAt(row, funnelMetricsCol+6)),
			CR90d:       ToNumber(cellAt(row, funnelMetricsCol+7)),
			TTO90d:      ToNumber(cellAt(row, funnelMetricsCol+8)),
		})
	}

	return result
}

// ParseOfferToDeal converte a grade da seção Angebot → Auftrag. Aqui um mês
// com zero Angebote é mantido (zero é um sinal real nessa etapa) e só a
// ausência de valor descarta a linha.
func ParseOfferToDeal(grid [][]any) []domain.OfferToDealMonth {
	result := make([]domain.OfferToDealMonth, 0, len(grid))

	for _, row := range grid {
		month := SerialToMonthLabel(cellAt(row, funnelMonthCol))
		if month == "" {
			continue
		}

		offers := ToNumber(cellAt(row, funnelPrimaryCol))
		if offers == nil {
			continue
		}

		result = append(result, domain.OfferToDealMonth{
			Month:        month,
			ISODate:      SerialToISODate(cellAt(row, funnelMonthCol)),
			Offers:       *offers,
			Deals30d:     ToNumber(cellAt(row, funnelMetricsCol)),
			CRDeal30d:    ToNumber(cellAt(row, funnelMetricsCol+1)),
			Lifecycle30d: ToNumber(cellAt(row, funnelMetricsCol+2)),
			Deals60d:     ToNumber(cellAt(row, funnelMetricsCol+3)),
			CRDeal60d:    ToNumber(cellAt(row, funnelMetricsCol+4)),
			Lifecycle60d: ToNumber(cellAt(row, funnelMetricsCol+5)),
			Deals90d:     ToNumber(cellAt(row, funnelMetricsCol+6)),
			CRDeal90d:    ToNumber(cellAt(row, funnelMetricsCol+7)),
			Lifecycle90d: ToNumber(cellAt(row, funnelMetricsCol+8)),
		})
	}

	return result
}

// ParseWebsessionDistribution converte a aba de distribuição de Websessions
// entre os consultores. Linhas sem mês ou sem total positivo são descartadas.
func ParseWebsessionDistribution(grid [][]any) []domain.WebsessionDistributionMonth {
	result := make([]domain.WebsessionDistributionMonth, 0, len(grid))

	for _, row := range grid {
		month := SerialToMonthLabel(cellAt(row, distMonthCol))
		if month == "" {
			continue
		}

		total := ToNumber(cellAt(row, distTotalCol))
		if total == nil || *total == 0 {
			continue
		}

		result = append(result, domain.WebsessionDistributionMonth{
			Month:       month,
			Lukas:       ToNumber(cellAt(row, distCountCol)),
			Sam:         ToNumber(cellAt(row, distCountCol+1)),
			Tobias:      ToNumber(cellAt(row, distCountCol+2)),
			Total:       *total,
			LukasShare:  ToNumber(cellAt(row, distShareCol)),
			SamShare:    ToNumber(cellAt(row, distShareCol+1)),
			TobiasShare: ToNumber(cellAt(row, distShareCol+2)),
		})
	}

	return result
}
