package hubspot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-cockpit-api/internal/config"
	"github.com/vfg2006/sales-cockpit-api/internal/domain"
	"github.com/vfg2006/sales-cockpit-api/pkg/utils"
)

const (
	// Propriedade customizada do CRM com a data da websession do deal
	websessionDateProperty = "websession_datum"

	searchLimit = 100
)

// DealIntegrator busca os deals de um consultor em um mês de calendário
type DealIntegrator interface {
	GetDealsByAgentMonth(ctx context.Context, agent domain.Agent, month string) (*domain.DealList, error)
}

type DealService struct {
	cfg    *config.Config
	Client hubspotclient.Client
}

func New(cfg *config.Config, client hubspotclient.Client) DealIntegrator {
	return &DealService{
		cfg:    cfg,
		Client: client,
	}
}

// GetDealsByAgentMonth consulta o CRM pelos deals do consultor cuja data de
// websession cai dentro do mês informado (formato YYYY-MM) e devolve os
// registros já formatados para exibição.
func (s *DealService) GetDealsByAgentMonth(ctx context.Context, agent domain.Agent, month string) (*domain.DealList, error) {
	lookupID, err := utils.GenerateID()
	if err != nil {
		lookupID = "unknown"
	}

	ownerID, ok := s.cfg.HubSpotOwners[agent.String()]
	if !ok || ownerID == "" {
		logrus.WithFields(logrus.Fields{
			"lookup_id": lookupID,
			"agent":     agent.String(),
		}).Error("deals: consultor sem owner configurado no CRM")
		return nil, fmt.Errorf("consultor sem owner configurado no CRM: %s", agent.String())
	}

	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("mês inválido %q: %w", month, err)
	}

	request := hubspotdomain.SearchRequest{
		FilterGroups: []hubspotdomain.FilterGroup{
			{
				Filters: []hubspotdomain.Filter{
					{
						PropertyName: hubspotdomain.PropertyOwnerID,
						Operator:     "EQ",
						Value:        ownerID,
					},
					{
						PropertyName: websessionDateProperty,
						Operator:     "BETWEEN",
						Value:        strconv.FormatInt(start.UnixMilli(), 10),
						HighValue:    strconv.FormatInt(end.UnixMilli(), 10),
					},
				},
			},
		},
		Properties: []string{
			hubspotdomain.PropertyDealName,
			websessionDateProperty,
			hubspotdomain.PropertyAmount,
			hubspotdomain.PropertyDealStage,
		},
		Sorts: []hubspotdomain.Sort{
			{PropertyName: websessionDateProperty, Direction: "ASCENDING"},
		},
		Limit: searchLimit,
	}

	resp, err := s.Client.SearchDeals(ctx, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"lookup_id": lookupID,
			"agent":     agent.String(),
			"month":     month,
			"error":     err.Error(),
		}).Error("deals: falha ao consultar deals no CRM")
		return nil, err
	}

	deals := make([]domain.Deal, 0, len(resp.Results))
	for _, result := range resp.Results {
		deals = append(deals, s.factoryDeal(result))
	}

	logrus.WithFields(logrus.Fields{
		"lookup_id": lookupID,
		"agent":     agent.String(),
		"month":     month,
		"total":     resp.Total,
	}).Debug("deals: consulta ao CRM concluída")

	return &domain.DealList{
		Deals: deals,
		Total: resp.Total,
	}, nil
}

// factoryDeal converte um resultado cru do CRM no registro de exibição
func (s *DealService) factoryDeal(result hubspotdomain.SearchResult) domain.Deal {
	name := result.Properties[hubspotdomain.PropertyDealName]
	if name == "" {
		name = utils.NoValuePlaceholder
	}

	stage := result.Properties[hubspotdomain.PropertyDealStage]
	if stage == "" {
		stage = utils.NoValuePlaceholder
	}

	deal := domain.Deal{
		Name:           name,
		WebsessionDate: utils.FormatDealDate(result.Properties[websessionDateProperty]),
		Amount:         utils.FormatEuro(result.Properties[hubspotdomain.PropertyAmount]),
		Stage:          stage,
	}

	if s.cfg.HubSpot.PortalID != "" && result.ID != "" {
		deal.Permalink = fmt.Sprintf("https://app.hubspot.com/contacts/%s/deal/%s", s.cfg.HubSpot.PortalID, result.ID)
	}

	return deal
}
