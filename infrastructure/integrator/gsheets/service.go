package gsheets

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/gsheets/gsheetsclient"
	"github.com/vfg2006/sales-cockpit-api/internal/config"
)

// ValueRenderOption controla como a API serializa as células
type ValueRenderOption string

const (
	// FormattedValue retorna a célula como texto formatado; usado apenas
	// para a célula de metadados A1
	FormattedValue ValueRenderOption = "FORMATTED_VALUE"
	// UnformattedValue retorna os valores nativos (números, seriais de
	// data); usado para todos os dados tabulares
	UnformattedValue ValueRenderOption = "UNFORMATTED_VALUE"
)

// SheetsIntegrator define a interface para buscar grades de células da
// planilha de vendas
type SheetsIntegrator interface {
	// FetchRange busca um range retangular de uma aba e retorna a grade
	// de células crua, linha a linha, na representação do renderOption
	FetchRange(ctx context.Context, sheetName, a1Range string, opt ValueRenderOption) ([][]any, error)
}

type Integrator struct {
	cfg    *config.Config
	client gsheetsclient.Client
}

// New cria o integrador de planilhas
func New(cfg *config.Config, client gsheetsclient.Client) SheetsIntegrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

func (i *Integrator) FetchRange(ctx context.Context, sheetName, a1Range string, opt ValueRenderOption) ([][]any, error) {
	fullRange := quoteSheetName(sheetName) + "!" + a1Range

	grid, err := i.client.GetValues(ctx, i.cfg.Google.SpreadsheetID, fullRange, string(opt))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar o range %s", fullRange)
	}

	return grid, nil
}

// quoteSheetName envolve em aspas simples nomes de aba com espaço, como a
// notação A1 exige
func quoteSheetName(name string) string {
	if strings.Contains(name, " ") {
		return "'" + name + "'"
	}
	return name
}
