// Package pacing projeta a meta mensal de faturamento e o ritmo de vendas no mês
package pacing

import (
	"math"
	"time"

	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

// HealthyFixedCostShare é o teto saudável dos custos fixos sobre o faturamento (20%)
const HealthyFixedCostShare = 0.20

type GoalPacing struct {
	MonthlyTarget           float64  `json:"monthly_target"`
	RevenueInPeriod         float64  `json:"revenue_in_period"`
	DaysInMonth             int      `json:"days_in_month"`
	DayOfMonth              int      `json:"day_of_month"`
	DaysRemaining           int      `json:"days_remaining"`
	ExpectedProgressPercent float64  `json:"expected_progress_percent"`
	ActualProgressPercent   float64  `json:"actual_progress_percent"`
	Shortfall               float64  `json:"shortfall"`
	RequiredDailyAverage    *float64 `json:"required_daily_average,omitempty"`
}

// GoalReached indica que o faturamento do período já cobre a meta
func (g GoalPacing) GoalReached() bool {
	return g.Shortfall <= 0
}

// MonthlyTarget é o faturamento necessário para que os custos fixos fiquem em 20%
func MonthlyTarget(totalFixedCostMonthly float64) float64 {
	return totalFixedCostMonthly / HealthyFixedCostShare
}

// Calculate calcula o ritmo da meta mensal. Só existe sinal de ritmo para o mês
// corrente ou últimos 30 dias; os demais períodos e negócios sem custo fixo retornam nil.
func Calculate(totalFixedCostMonthly, revenueInPeriod float64, now time.Time, period domain.Period) *GoalPacing {
	if !period.IsMonthly() || totalFixedCostMonthly <= 0 {
		return nil
	}

	target := MonthlyTarget(totalFixedCostMonthly)
	daysInMonth := domain.DaysInMonth(now)
	dayOfMonth := now.Day()

	pacing := &GoalPacing{
		MonthlyTarget:           target,
		RevenueInPeriod:         revenueInPeriod,
		DaysInMonth:             daysInMonth,
		DayOfMonth:              dayOfMonth,
		DaysRemaining:           daysInMonth - dayOfMonth,
		ExpectedProgressPercent: float64(dayOfMonth) / float64(daysInMonth) * 100,
		ActualProgressPercent:   utils.PercentOf(revenueInPeriod, target),
		Shortfall:               target - revenueInPeriod,
	}

	if pacing.DaysRemaining > 0 {
		required := math.Max(pacing.Shortfall, 0) / float64(pacing.DaysRemaining)
		pacing.RequiredDailyAverage = &required
	}

	return pacing
}

// FixedCostDeduction retorna quanto do custo fixo deve ser descontado na estimativa de lucro.
// No mês e nos últimos 30 dias o compromisso mensal é descontado inteiro, nunca proporcional.
func FixedCostDeduction(totalFixedCostMonthly float64, now time.Time, period domain.Period) float64 {
	if totalFixedCostMonthly <= 0 {
		return 0
	}

	daily := totalFixedCostMonthly / float64(domain.DaysInMonth(now))

	switch period {
	case domain.PeriodToday:
		return daily
	case domain.PeriodWeek:
		elapsedDays := int(now.Weekday()) + 1
		return daily * float64(elapsedDays)
	default:
		return totalFixedCostMonthly
	}
}
