package reporting

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vfg2006/sales-cockpit-api/internal/domain"
)

// Limiares das observações narrativas
const (
	// Diferença média entre CR de 90 e 60 dias abaixo da qual o ganho da
	// janela longa é considerado irrelevante (2 pontos percentuais)
	horizonGainThreshold = 0.02
	// Lifecycle Time de 90 dias acima do qual um mês é tratado como outlier
	lifecycleOutlierDays = 150
)

// GenerateInsights produz as observações narrativas de um escopo, em
// alemão, na ordem fixa do checklist (a ordem não é um ranking). Cada
// observação tem sua própria condição de disparo; o resultado pode ter de
// zero a cinco frases. Para o escopo do time, agent é nil.
func GenerateInsights(wsToOffer []domain.WebsessionToOfferMonth, offerToDeal []domain.OfferToDealMonth, agent *domain.Agent) []string {
	insights := make([]string, 0, 5)
	wsRows := withWebsessions(wsToOffer)
	odRows := withOffers(offerToDeal)

	subject := "Das Team"
	if agent != nil {
		subject = agent.Info().ShortName
	}

	// 1. Mês de maior volume e sua CR de 90 dias (empate: primeira ocorrência)
	if len(wsRows) > 0 {
		peak := wsRows[0]
		for _, r := range wsRows[1:] {
			if r.Websessions > peak.Websessions {
				peak = r
			}
		}

		cr90 := "noch keine 90d CR"
		if peak.CR90d != nil {
			cr90 = fmt.Sprintf("%.1f%% CR (90d)", *peak.CR90d*100)
		}

		insights = append(insights, fmt.Sprintf(
			"%s hatte im %s das höchste Volumen mit %s Websessions, aber nur %s – Qualität vor Quantität prüfen.",
			subject, peak.Month, formatCount(peak.Websessions), cr90,
		))
	}

	// 2. Ganho médio da janela de 90 dias sobre a de 60 em Websession→Angebot.
	// Só meses com as duas CRs entram na média. Ganho negativo acima do
	// limiar não gera mensagem: a assimetria é intencional.
	var gainSum float64
	var gainCount int
	for _, r := range wsRows {
		if r.CR90d != nil && r.CR60d != nil {
			gainSum += *r.CR90d - *r.CR60d
			gainCount++
		}
	}
	if gainCount > 0 {
		avgGain := gainSum / float64(gainCount)
		if math.Abs(avgGain) < horizonGainThreshold {
			insights = append(insights,
				"Der 90-Tage-View zeigt kaum Verbesserung gegenüber 60 Tagen bei Websession→Angebot – Entscheidungen fallen früh oder gar nicht.",
			)
		} else if avgGain > 0 {
			insights = append(insights, fmt.Sprintf(
				"Durchschnittlich %.1f%% mehr Angebote kommen zwischen Tag 60 und 90 dazu – der längere Zeitraum lohnt sich.",
				avgGain*100,
			))
		}
	}

	// 3. Outlier de Lifecycle Time em Angebot→Auftrag
	if len(odRows) > 0 {
		var maxLC *domain.OfferToDealMonth
		for i, r := range odRows {
			if r.Lifecycle90d == nil || *r.Lifecycle90d <= 0 {
				continue
			}
			if maxLC == nil || *r.Lifecycle90d > *maxLC.Lifecycle90d {
				maxLC = &odRows[i]
			}
		}
		if maxLC != nil && *maxLC.Lifecycle90d > lifecycleOutlierDays {
			insights = append(insights, fmt.Sprintf(
				"%s zeigt eine außergewöhnlich lange Lifecycle Time (%.0f Tage) – hier lag vermutlich ein Ausreißer-Deal vor.",
				maxLC.Month, *maxLC.Lifecycle90d,
			))
		}
	}

	// 4. Time to Offer média (janela de 90 dias)
	var ttoSum float64
	var ttoCount int
	for _, r := range wsRows {
		if r.TTO90d != nil && *r.TTO90d > 0 {
			ttoSum += *r.TTO90d
			ttoCount++
		}
	}
	if ttoCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"Die durchschnittliche Time to Offer liegt bei ~%.0f Tagen – Potenzial für Beschleunigung in der Angebotsphase.",
			ttoSum/float64(ttoCount),
		))
	}

	// 5. Melhor e pior mês de Abschlussrate (CR 90d de Angebot→Auftrag).
	// Máximo e mínimo são varridos de forma independente; em empate vale a
	// primeira ocorrência de cada um.
	withCR := make([]domain.OfferToDealMonth, 0, len(odRows))
	for _, r := range odRows {
		if r.CRDeal90d != nil && *r.CRDeal90d > 0 {
			withCR = append(withCR, r)
		}
	}
	if len(withCR) >= 2 {
		best, worst := withCR[0], withCR[0]
		for _, r := range withCR[1:] {
			if *r.CRDeal90d > *best.CRDeal90d {
				best = r
			}
			if *r.CRDeal90d < *worst.CRDeal90d {
				worst = r
			}
		}
		insights = append(insights, fmt.Sprintf(
			"Beste Abschlussrate: %s mit %.1f%% (90d). Schwächster Monat: %s mit %.1f%%.",
			best.Month, *best.CRDeal90d*100, worst.Month, *worst.CRDeal90d*100,
		))
	}

	return insights
}

// formatCount imprime uma contagem sem casas decimais artificiais
func formatCount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
