package exporting

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/archive"
	goodtilldomain "github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/domain"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill/mocks"
	"github.com/vfg2006/goodtill-sales-archiver/internal/domain"
	"github.com/vfg2006/goodtill-sales-archiver/internal/usecases/flattening"
	"go.uber.org/mock/gomock"
)

var testDay = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

func saleWithItems(saleID string, itemIDs ...string) goodtilldomain.Sale {
	items := make([]any, 0, len(itemIDs))
	for _, id := range itemIDs {
		items = append(items, map[string]any{"id": id, "quantity": "1"})
	}

	return goodtilldomain.Sale{
		"id":            saleID,
		"sales_details": map[string]any{"sales_items": items},
		"sales_payments": map[string]any{
			"cash": map[string]any{"payment_total": "5.00"},
		},
	}
}

func newTestService(t *testing.T, integrator *mocks.MockGoodtillIntegrator) (*Service, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "archive")
	return NewService(integrator, flattening.NewService(), archive.NewCSVArchive(dir)), dir
}

func TestService_Export_WritesCombinedArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockGoodtillIntegrator(ctrl)
	integrator.EXPECT().
		GetSalesForDay(domain.AreaFood, testDay).
		Return([]goodtilldomain.Sale{saleWithItems("f1", "i1")}, nil)
	integrator.EXPECT().
		GetSalesForDay(domain.AreaBar, testDay).
		Return([]goodtilldomain.Sale{saleWithItems("b1", "i2", "i3")}, nil)

	service, dir := newTestService(t, integrator)

	result, err := service.Export(context.Background(), testDay)
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.Equal(t, 3, result.Records)
	assert.Equal(t, "2026-08-27", result.Date)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, filepath.Join(dir, "2026-08-27_sales.csv"), result.Path)
	assert.Equal(t, result, service.LastResult())

	content, err := os.ReadFile(result.Path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4) // header + 3 records
	assert.True(t, strings.HasPrefix(lines[0], "sale_id,"))
	assert.True(t, strings.HasSuffix(lines[0], ",Area"))
	assert.True(t, strings.HasSuffix(lines[1], ",Food"))
	assert.True(t, strings.HasSuffix(lines[2], ",Bar"))
	assert.True(t, strings.HasSuffix(lines[3], ",Bar"))
}

func TestService_Export_SecondRunSkipsWithoutFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockGoodtillIntegrator(ctrl)
	integrator.EXPECT().
		GetSalesForDay(gomock.Any(), testDay).
		Return([]goodtilldomain.Sale{saleWithItems("s1", "i1")}, nil).
		Times(2)

	service, _ := newTestService(t, integrator)

	first, err := service.Export(context.Background(), testDay)
	require.NoError(t, err)
	require.False(t, first.Skipped)

	before, err := os.ReadFile(first.Path)
	require.NoError(t, err)

	// no further integrator expectations: the skip must not hit the API
	second, err := service.Export(context.Background(), testDay)
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Equal(t, first.Path, second.Path)

	after, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_Export_FetchFailureWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockGoodtillIntegrator(ctrl)
	integrator.EXPECT().
		GetSalesForDay(domain.AreaFood, testDay).
		Return([]goodtilldomain.Sale{saleWithItems("f1", "i1")}, nil)
	integrator.EXPECT().
		GetSalesForDay(domain.AreaBar, testDay).
		Return(nil, errors.New("request failed with status: 502 Bad Gateway"))

	service, dir := newTestService(t, integrator)

	result, err := service.Export(context.Background(), testDay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching Bar sales")
	assert.Nil(t, result)

	_, statErr := os.Stat(filepath.Join(dir, "2026-08-27_sales.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestService_Export_EmptyResultSetAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockGoodtillIntegrator(ctrl)
	integrator.EXPECT().
		GetSalesForDay(domain.AreaFood, testDay).
		Return([]goodtilldomain.Sale{}, nil)

	service, dir := newTestService(t, integrator)

	_, err := service.Export(context.Background(), testDay)
	require.Error(t, err)
	assert.ErrorIs(t, err, flattening.ErrNoSalesData)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}
