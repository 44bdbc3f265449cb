package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFilters_PriorYearWindow(t *testing.T) {
	f := ReportFilters{FromDate: "2024-01-01", ToDate: "2024-01-31"}

	w, err := f.PriorYearWindow()
	require.NoError(t, err)
	assert.Equal(t, DateWindow{From: "2023-01-01", To: "2023-01-31"}, w)

	// Deslocamento fixo de 365 dias atravessando 29/02
	f = ReportFilters{FromDate: "2024-03-01", ToDate: "2024-03-31"}
	w, err = f.PriorYearWindow()
	require.NoError(t, err)
	assert.Equal(t, DateWindow{From: "2023-03-02", To: "2023-04-01"}, w)

	_, err = ReportFilters{FromDate: "2024-13-01", ToDate: "2024-01-31"}.PriorYearWindow()
	assert.Error(t, err)
}

func TestDateWindow_Contains(t *testing.T) {
	w := DateWindow{From: "2024-01-01", To: "2024-01-31"}

	assert.True(t, w.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}
