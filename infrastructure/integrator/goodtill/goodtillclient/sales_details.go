package goodtillclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	goodtilldomain "github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultPageSize = 50

type SalesDetailsParams struct {
	Token string
	From  string
	To    string
	Limit int
}

// GetSalesDetails fetches every sale in the given window, following the
// endpoint's offset pagination. Accumulation ends on an empty page, or on a
// page shorter than the requested limit: the API has no explicit end-of-data
// marker, so a short page is treated as the last one.
func (c *GoodtillClient) GetSalesDetails(params SalesDetailsParams) ([]goodtilldomain.Sale, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = c.config.Goodtill.PageSize
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var allSales []goodtilldomain.Sale
	offset := 0

	for {
		batch, err := c.fetchPage(ctx, params, limit, offset)
		if err != nil {
			return nil, err
		}

		if len(batch) == 0 {
			break
		}

		allSales = append(allSales, batch...)

		if len(batch) < limit {
			break
		}

		offset += limit
	}

	logrus.WithFields(logrus.Fields{
		"from":  params.From,
		"to":    params.To,
		"sales": len(allSales),
	}).Debug("Fetched sales details from Goodtill")

	return allSales, nil
}

func (c *GoodtillClient) fetchPage(ctx context.Context, params SalesDetailsParams, limit, offset int) ([]goodtilldomain.Sale, error) {
	endpoint, err := url.Parse(c.config.Goodtill.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/external/get_sales_details")

	query := endpoint.Query()
	query.Set("from", params.From)
	query.Set("to", params.To)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+params.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sales details request failed with status: %s", resp.Status)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	batch, ok := goodtilldomain.SalesFromPayload(payload)
	if !ok {
		return nil, fmt.Errorf("unexpected payload shape at offset %d", offset)
	}

	return batch, nil
}
