package goodtilldomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesFromPayload(t *testing.T) {
	sale := map[string]any{"id": "s1"}

	sales, ok := SalesFromPayload([]any{sale})
	require.True(t, ok)
	require.Len(t, sales, 1)
	assert.Equal(t, "s1", sales[0].Field("id"))

	sales, ok = SalesFromPayload(map[string]any{"data": []any{sale}})
	require.True(t, ok)
	assert.Len(t, sales, 1)

	_, ok = SalesFromPayload(map[string]any{"data": "not a list"})
	assert.False(t, ok)

	_, ok = SalesFromPayload(42)
	assert.False(t, ok)

	_, ok = SalesFromPayload([]any{"not an object"})
	assert.False(t, ok)
}

func TestSale_Items(t *testing.T) {
	sale := Sale{
		"sales_details": map[string]any{
			"sales_items": []any{
				map[string]any{"id": "i1"},
				"junk entry",
				map[string]any{"id": "i2"},
			},
		},
	}

	items := sale.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "i1", items[0].Field("id"))

	assert.Empty(t, Sale{}.Items())
	assert.Empty(t, Sale{}.Payments())
	assert.Nil(t, Sale{}.Field("anything"))
}
