package reporting

import (
	"context"

	"github.com/vfg2006/sales-cockpit-api/internal/domain"
)

// DashboardReporter monta o snapshot completo do dashboard a partir da
// planilha de vendas
type DashboardReporter interface {
	GetDashboard(ctx context.Context) (*domain.DashboardResponse, error)
}
