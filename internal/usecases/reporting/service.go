package reporting

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/gsheets"
	"github.com/vfg2006/sales-cockpit-api/internal/config"
	"github.com/vfg2006/sales-cockpit-api/internal/domain"
	"github.com/vfg2006/sales-cockpit-api/internal/sheetgrid"
)

// Abas e ranges da planilha de vendas. A aba do time tem uma linha de
// cabeçalho a mais que as abas individuais, por isso o range começa em A6.
const (
	teamSheet = "Teamview"
	distSheet = "Aufteilung Websessions"

	metadataRange = "A1"
	teamWsRange   = "A6:M21"
	agentWsRange  = "A5:M20"
	odRange       = "A28:M43"
	distRange     = "A4:K16"
)

type Service struct {
	cfg    *config.Config
	sheets gsheets.SheetsIntegrator
}

// NewService cria o serviço de montagem do dashboard
func NewService(cfg *config.Config, sheets gsheets.SheetsIntegrator) DashboardReporter {
	return &Service{
		cfg:    cfg,
		sheets: sheets,
	}
}

// fetchSpec descreve uma das buscas paralelas do snapshot
type fetchSpec struct {
	sheetName string
	a1Range   string
	render    gsheets.ValueRenderOption
	target    *[][]any
}

// GetDashboard busca todos os ranges da planilha em paralelo, converte as
// grades cruas nas sequências mensais e calcula KPIs e insights para o time
// e para cada consultor. Qualquer busca que falhe invalida o snapshot
// inteiro: uma resposta parcial seria inconsistente.
func (s *Service) GetDashboard(ctx context.Context) (*domain.DashboardResponse, error) {
	var (
		metadataGrid [][]any
		teamWsGrid   [][]any
		teamOdGrid   [][]any
		distGrid     [][]any
	)

	agents := domain.Agents()
	agentWsGrids := make([][][]any, len(agents))
	agentOdGrids := make([][][]any, len(agents))

	specs := []fetchSpec{
		{teamSheet, metadataRange, gsheets.FormattedValue, &metadataGrid},
		{teamSheet, teamWsRange, gsheets.UnformattedValue, &teamWsGrid},
		{teamSheet, odRange, gsheets.UnformattedValue, &teamOdGrid},
		{distSheet, distRange, gsheets.UnformattedValue, &distGrid},
	}
	for i, agent := range agents {
		sheetName := agent.Info().SheetName
		specs = append(specs,
			fetchSpec{sheetName, agentWsRange, gsheets.UnformattedValue, &agentWsGrids[i]},
			fetchSpec{sheetName, odRange, gsheets.UnformattedValue, &agentOdGrids[i]},
		)
	}

	// Usar WaitGroup para esperar todas as buscas terminarem
	wg := sync.WaitGroup{}
	wg.Add(len(specs))

	// Mutex para proteger o primeiro erro registrado
	var mu sync.Mutex
	var fetchErr error

	for _, spec := range specs {
		go func(spec fetchSpec) {
			defer wg.Done()

			grid, err := s.sheets.FetchRange(ctx, spec.sheetName, spec.a1Range, spec.render)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"sheet": spec.sheetName,
					"range": spec.a1Range,
					"error": err.Error(),
				}).Error("dashboard: falha ao buscar range da planilha")

				mu.Lock()
				if fetchErr == nil {
					fetchErr = errors.Wrapf(err, "erro ao buscar %s!%s", spec.sheetName, spec.a1Range)
				}
				mu.Unlock()
				return
			}

			*spec.target = grid
		}(spec)
	}

	wg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	response := &domain.DashboardResponse{
		Teamview:    buildScope(teamWsGrid, teamOdGrid, nil),
		Individuals: make(map[string]domain.ScopeReport, len(agents)),
		WsDist:      sheetgrid.ParseWebsessionDistribution(distGrid),
	}

	for i, agent := range agents {
		a := agent
		response.Individuals[agent.Info().DisplayName] = buildScope(agentWsGrids[i], agentOdGrids[i], &a)
	}

	if lastUpdated := parseMetadata(metadataGrid); lastUpdated != "" {
		response.LastUpdated = &lastUpdated
	}

	return response, nil
}

// buildScope converte as grades cruas de um escopo no relatório completo
func buildScope(wsGrid, odGrid [][]any, agent *domain.Agent) domain.ScopeReport {
	wsToOffer := sheetgrid.ParseWebsessionToOffer(wsGrid)
	offerToDeal := sheetgrid.ParseOfferToDeal(odGrid)

	return domain.ScopeReport{
		WsToOffer:   wsToOffer,
		OfferToDeal: offerToDeal,
		KPIs:        CalculateKPIs(wsToOffer, offerToDeal),
		Insights:    GenerateInsights(wsToOffer, offerToDeal, agent),
	}
}

// parseMetadata extrai a data de atualização da célula de metadados A1
func parseMetadata(grid [][]any) string {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ""
	}
	return sheetgrid.ParseLastUpdated(grid[0][0])
}
