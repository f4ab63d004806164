package goodtill

import (
	"fmt"
	"time"

	goodtilldomain "github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/domain"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/goodtillclient"
	"github.com/vfg2006/goodtill-sales-archiver/internal/config"
	"github.com/vfg2006/goodtill-sales-archiver/internal/domain"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type GoodtillIntegrator interface {
	GetSalesForDay(area domain.Area, day time.Time) ([]goodtilldomain.Sale, error)
}

type GoodtillService struct {
	cfg    *config.Config
	Client goodtillclient.Client
}

func New(cfg *config.Config, client goodtillclient.Client) GoodtillIntegrator {
	return &GoodtillService{
		cfg:    cfg,
		Client: client,
	}
}

// GetSalesForDay fetches every sale of the given till for one calendar day,
// using the 00:00:00-23:59:59 window the endpoint expects.
func (s *GoodtillService) GetSalesForDay(area domain.Area, day time.Time) ([]goodtilldomain.Sale, error) {
	token, err := s.tokenForArea(area)
	if err != nil {
		return nil, err
	}

	from, to := utils.DayWindow(day)

	return s.Client.GetSalesDetails(goodtillclient.SalesDetailsParams{
		Token: token,
		From:  from,
		To:    to,
		Limit: s.cfg.Goodtill.PageSize,
	})
}

func (s *GoodtillService) tokenForArea(area domain.Area) (string, error) {
	switch area {
	case domain.AreaFood:
		return s.cfg.Goodtill.FoodToken, nil
	case domain.AreaBar:
		return s.cfg.Goodtill.BarToken, nil
	default:
		return "", fmt.Errorf("no credential configured for area %q", area)
	}
}
