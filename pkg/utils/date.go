package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// ShiftDays desloca uma data YYYY-MM-DD em dias e devolve no mesmo formato
func ShiftDays(dateStr string, days int) (string, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}

	return date.AddDate(0, 0, days).Format(time.DateOnly), nil
}
