package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-cockpit-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-cockpit-api/pkg/apiErrors"
)

// GetDashboard retorna o snapshot completo do dashboard, recalculado da
// planilha a cada requisição
func GetDashboard(service reporting.DashboardReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.GetDashboard(r.Context())
		if err != nil {
			logrus.Error("Erro ao montar o dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados da planilha", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(dashboard)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
