package goodtillclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/goodtill-sales-archiver/internal/config"
)

func newTestClient(url string, pageSize int) Client {
	return NewClient(&config.Config{
		Goodtill: config.Goodtill{
			URL:      url,
			PageSize: pageSize,
		},
	})
}

func saleJSON(id int) string {
	return fmt.Sprintf(`{"id": %d, "sales_details": {"sales_items": []}}`, id)
}

func TestGoodtillClient_GetSalesDetails_Paginates(t *testing.T) {
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-food", r.Header.Get("Authorization"))
		assert.Equal(t, "/external/get_sales_details", r.URL.Path)
		assert.Equal(t, "2026-08-27 00:00:00", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-08-27 23:59:59", r.URL.Query().Get("to"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		offset := r.URL.Query().Get("offset")
		requests = append(requests, offset)

		w.Header().Set("Content-Type", "application/json")
		switch offset {
		case "0":
			// full page wrapped in the data envelope
			fmt.Fprintf(w, `{"data": [%s, %s]}`, saleJSON(1), saleJSON(2))
		default:
			// short page as a bare list ends the pagination
			fmt.Fprintf(w, `[%s]`, saleJSON(3))
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	sales, err := client.GetSalesDetails(SalesDetailsParams{
		Token: "token-food",
		From:  "2026-08-27 00:00:00",
		To:    "2026-08-27 23:59:59",
	})

	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, []string{"0", "2"}, requests)
	assert.Equal(t, float64(1), sales[0].Field("id"))
	assert.Equal(t, float64(3), sales[2].Field("id"))
}

func TestGoodtillClient_GetSalesDetails_ExactMultipleTerminates(t *testing.T) {
	var pages int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		w.Header().Set("Content-Type", "application/json")

		// the final page holds exactly limit records; the next one is empty,
		// so the empty-page check must stop the loop
		if r.URL.Query().Get("offset") == "0" {
			fmt.Fprintf(w, `[%s, %s]`, saleJSON(1), saleJSON(2))
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	sales, err := client.GetSalesDetails(SalesDetailsParams{Token: "t", From: "a", To: "b"})

	require.NoError(t, err)
	assert.Len(t, sales, 2)
	assert.Equal(t, 2, pages)
}

func TestGoodtillClient_GetSalesDetails_NonSuccessStatusAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 50)

	sales, err := client.GetSalesDetails(SalesDetailsParams{Token: "bad", From: "a", To: "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Nil(t, sales)
}

func TestGoodtillClient_GetSalesDetails_MalformedPayloadFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"unexpected": true}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 50)

	_, err := client.GetSalesDetails(SalesDetailsParams{Token: "t", From: "a", To: "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload shape")
}

func TestGoodtillClient_GetSalesDetails_LimitOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		require.NoError(t, err)
		assert.Equal(t, 5, limit)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[%s]`, saleJSON(1))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 50)

	sales, err := client.GetSalesDetails(SalesDetailsParams{Token: "t", From: "a", To: "b", Limit: 5})

	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
