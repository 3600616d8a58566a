package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-cockpit-api/internal/domain"
	"github.com/vfg2006/sales-cockpit-api/pkg/apiErrors"
)

// GetDeals retorna os deals de um consultor em um mês de calendário, para o
// detalhamento por mês do dashboard. Espera os parâmetros de query `agent`
// (nome completo do consultor) e `month` (YYYY-MM).
func GetDeals(service hubspot.DealIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentName := r.URL.Query().Get("agent")
		month := r.URL.Query().Get("month")

		if agentName == "" || month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros agent e month são obrigatórios", nil)
			return
		}

		agent, err := domain.AgentByDisplayName(agentName)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Consultor desconhecido", map[string]string{
				"agent": agentName,
			})
			return
		}

		if _, err := time.Parse("2006-01", month); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês deve estar no formato YYYY-MM", map[string]string{
				"month": month,
			})
			return
		}

		deals, err := service.GetDealsByAgentMonth(r.Context(), agent, month)
		if err != nil {
			logrus.Error("Erro ao buscar deals do consultor:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar deals no CRM", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(deals)
		if err != nil {
			logrus.Error("Erro ao enviar resposta de deals:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
