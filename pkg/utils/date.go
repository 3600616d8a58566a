package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// MonthBounds converte uma chave de mês "YYYY-MM" nos limites do mês em
// UTC: o primeiro instante e o último milissegundo. É o intervalo usado no
// filtro de deals por mês de Websession.
func MonthBounds(yearMonth string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("chave de mês inválida %q: %w", yearMonth, err)
	}

	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}
