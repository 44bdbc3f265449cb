package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"arredonda para cima", 1.005001, 1.01},
		{"arredonda para baixo", 33.3333, 33.33},
		{"negativo", -12.345678, -12.35},
		{"NaN", math.NaN(), 0},
		{"+Inf", math.Inf(1), 0},
		{"-Inf", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeRound(tt.in))
		})
	}
}

func TestShiftDays(t *testing.T) {
	got, err := ShiftDays("2024-03-01", -365)
	require.NoError(t, err)
	// 2024 é bissexto: 365 dias antes de 01/03/2024 é 02/03/2023
	assert.Equal(t, "2023-03-02", got)

	got, err = ShiftDays("2023-01-31", -365)
	require.NoError(t, err)
	assert.Equal(t, "2022-01-31", got)

	_, err = ShiftDays("31/01/2023", -365)
	assert.Error(t, err)
}

func TestSafeRound_LargeValues(t *testing.T) {
	assert.Equal(t, math.MaxFloat64, SafeRound(math.MaxFloat64))
	assert.False(t, math.IsInf(SafeRound(-math.MaxFloat64), 0))
}
