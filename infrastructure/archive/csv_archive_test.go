package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/goodtill-sales-archiver/internal/domain"
)

var testDay = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

func TestCSVArchive_WriteCreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "archive")
	a := NewCSVArchive(dir)

	exists, err := a.Exists(testDay)
	require.NoError(t, err)
	assert.False(t, exists)

	quantity := 2.0
	path, err := a.Write(testDay, []domain.FlatRecord{
		{SaleID: "1", Quantity: &quantity, Area: domain.AreaFood},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026-08-27_sales.csv"), path)

	exists, err = a.Exists(testDay)
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "sale_id,")
	assert.Contains(t, string(content), "1,")
	assert.Contains(t, string(content), ",Food")
}

func TestCSVArchive_WriteNeverOverwrites(t *testing.T) {
	a := NewCSVArchive(t.TempDir())

	_, err := a.Write(testDay, []domain.FlatRecord{{SaleID: "1"}})
	require.NoError(t, err)

	_, err = a.Write(testDay, []domain.FlatRecord{{SaleID: "2"}})
	assert.Error(t, err)
}

func TestCSVArchive_RowMatchesHeaderWidth(t *testing.T) {
	assert.Len(t, domain.FlatRecord{}.CSVRow(), len(domain.CSVHeader()))
}
