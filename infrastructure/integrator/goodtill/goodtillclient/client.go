package goodtillclient

import (
	"net/http"
	"time"

	goodtilldomain "github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/domain"
	"github.com/vfg2006/goodtill-sales-archiver/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	GetSalesDetails(params SalesDetailsParams) ([]goodtilldomain.Sale, error)
}

type GoodtillClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GoodtillClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
