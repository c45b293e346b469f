package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("período inválido")

// Period representa o período de relatório selecionado no painel
type Period string

const (
	PeriodToday      Period = "hoje"
	PeriodWeek       Period = "semana"
	PeriodMonth      Period = "mes"
	PeriodLast30Days Period = "30dias"
)

func ParsePeriod(value string) (Period, error) {
	switch p := Period(value); p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodLast30Days:
		return p, nil
	case "":
		return PeriodMonth, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPeriod, value)
	}
}

// IsMonthly indica se o período cobre um mês inteiro de compromissos fixos
func (p Period) IsMonthly() bool {
	return p == PeriodMonth || p == PeriodLast30Days
}

// Range retorna o intervalo [início, now] do período
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodToday:
		return startOfDay, now
	case PeriodWeek:
		return StartOfWeek(now), now
	case PeriodLast30Days:
		return now.AddDate(0, 0, -30), now
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	}
}

// StartOfWeek retorna o domingo 00:00 da semana de t
func StartOfWeek(t time.Time) time.Time {
	startOfDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return startOfDay.AddDate(0, 0, -int(t.Weekday()))
}

// DaysInMonth retorna a quantidade de dias do mês de t
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
