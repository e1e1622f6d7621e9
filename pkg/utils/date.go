package utils

import (
	"strings"
	"time"
)

// dateLayouts são os formatos aceitos para datas digitadas manualmente, do mais
// específico para o mais genérico
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// ParseFlexible tenta todos os formatos conhecidos. Datas sem fuso são interpretadas em loc.
func ParseFlexible(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// StartOfDay retorna a meia-noite do dia de date, no mesmo fuso
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay retorna o último instante do dia de date
func EndOfDay(date time.Time) time.Time {
	return StartOfDay(date).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysBetween conta dias de calendário entre from e to (negativo se to vem antes)
func DaysBetween(from, to time.Time) int {
	from = StartOfDay(from)
	to = StartOfDay(to.In(from.Location()))

	// Usa Date para não sofrer com dias de 23h/25h no horário de verão
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(toUTC.Sub(fromUTC).Hours() / 24)
}
