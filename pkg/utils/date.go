package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	DateTimeLayout  = "2006-01-02 15:04:05"
	CompactDate     = "20060102"
	BrazilianLayout = "02/01/2006"
)

// ParseFlexibleDate aceita data com ou sem horário
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	layouts := []string{
		DateTimeLayout,
		"2006-01-02 15:04",
		DateLayout,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("não foi possível interpretar a data: %s", dateStr)
}

// DaysBetween retorna a quantidade de dias inteiros entre start e end
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
