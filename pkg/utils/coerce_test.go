package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatOrNil(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{name: "json number", input: float64(3.5), want: floatPtr(3.5)},
		{name: "numeric string", input: "2", want: floatPtr(2)},
		{name: "decimal string", input: " 7.25 ", want: floatPtr(7.25)},
		{name: "non-numeric string", input: "N/A", want: nil},
		{name: "nil", input: nil, want: nil},
		{name: "bool true", input: true, want: floatPtr(1)},
		{name: "object", input: map[string]any{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FloatOrNil(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFloatOrZero(t *testing.T) {
	assert.Equal(t, 0.0, FloatOrZero(nil))
	assert.Equal(t, 0.0, FloatOrZero("broken"))
	assert.Equal(t, 4.5, FloatOrZero("4.5"))
}

func TestTimeOrNil(t *testing.T) {
	got := TimeOrNil("2026-08-27 19:32:05")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 8, 27, 19, 32, 5, 0, time.UTC), *got)

	assert.Nil(t, TimeOrNil("yesterday-ish"))
	assert.Nil(t, TimeOrNil(nil))
	assert.Nil(t, TimeOrNil(""))
	assert.Nil(t, TimeOrNil(float64(42)))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "hello", Stringify("hello"))
	assert.Equal(t, "12", Stringify(float64(12)))
	assert.Equal(t, "12.5", Stringify(float64(12.5)))
	assert.Equal(t, "true", Stringify(true))
}

func TestDayWindow(t *testing.T) {
	from, to := DayWindow(time.Date(2026, 8, 27, 14, 3, 0, 0, time.UTC))
	assert.Equal(t, "2026-08-27 00:00:00", from)
	assert.Equal(t, "2026-08-27 23:59:59", to)
}

func floatPtr(f float64) *float64 {
	return &f
}
