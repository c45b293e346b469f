package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

func TestCalculate(t *testing.T) {
	// 15 de junho de 2024: mês com 30 dias, metade do mês decorrido
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fixed    float64
		revenue  float64
		period   domain.Period
		validate func(t *testing.T, pacing *GoalPacing)
	}{
		{
			name:    "Meta mensal derivada do custo fixo",
			fixed:   6000,
			revenue: 30000,
			period:  domain.PeriodMonth,
			validate: func(t *testing.T, pacing *GoalPacing) {
				require.NotNil(t, pacing)
				assert.InDelta(t, 30000.0, pacing.MonthlyTarget, 1e-9)
				assert.Equal(t, 0.0, pacing.Shortfall)
				assert.True(t, pacing.GoalReached())
				require.NotNil(t, pacing.RequiredDailyAverage)
				assert.Equal(t, 0.0, *pacing.RequiredDailyAverage)
			},
		},
		{
			name:    "Ritmo abaixo do esperado",
			fixed:   6000,
			revenue: 9000,
			period:  domain.PeriodLast30Days,
			validate: func(t *testing.T, pacing *GoalPacing) {
				require.NotNil(t, pacing)
				assert.Equal(t, 30, pacing.DaysInMonth)
				assert.Equal(t, 15, pacing.DayOfMonth)
				assert.Equal(t, 15, pacing.DaysRemaining)
				assert.InDelta(t, 50.0, pacing.ExpectedProgressPercent, 1e-9)
				assert.InDelta(t, 30.0, pacing.ActualProgressPercent, 1e-9)
				assert.InDelta(t, 21000.0, pacing.Shortfall, 1e-9)
				require.NotNil(t, pacing.RequiredDailyAverage)
				assert.InDelta(t, 1400.0, *pacing.RequiredDailyAverage, 1e-9)
				assert.False(t, pacing.GoalReached())
			},
		},
		{
			name:    "Período de hoje não tem ritmo mensal",
			fixed:   6000,
			revenue: 1000,
			period:  domain.PeriodToday,
			validate: func(t *testing.T, pacing *GoalPacing) {
				assert.Nil(t, pacing)
			},
		},
		{
			name:    "Período da semana não tem ritmo mensal",
			fixed:   6000,
			revenue: 1000,
			period:  domain.PeriodWeek,
			validate: func(t *testing.T, pacing *GoalPacing) {
				assert.Nil(t, pacing)
			},
		},
		{
			name:    "Sem custo fixo não há meta",
			fixed:   0,
			revenue: 1000,
			period:  domain.PeriodMonth,
			validate: func(t *testing.T, pacing *GoalPacing) {
				assert.Nil(t, pacing)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Calculate(tt.fixed, tt.revenue, now, tt.period))
		})
	}
}

func TestCalculate_LastDayOfMonthHasNoRequiredAverage(t *testing.T) {
	now := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)

	pacing := Calculate(6000, 1000, now, domain.PeriodMonth)

	require.NotNil(t, pacing)
	assert.Equal(t, 0, pacing.DaysRemaining)
	assert.Nil(t, pacing.RequiredDailyAverage)
}

func TestFixedCostDeduction(t *testing.T) {
	// terça-feira, 11 de junho de 2024 (mês com 30 dias)
	now := time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   domain.Period
		expected float64
	}{
		{name: "Mês desconta o valor integral", period: domain.PeriodMonth, expected: 3000},
		{name: "Últimos 30 dias desconta o valor integral", period: domain.PeriodLast30Days, expected: 3000},
		{name: "Hoje desconta a diária", period: domain.PeriodToday, expected: 100},
		{name: "Semana desconta os dias decorridos desde domingo", period: domain.PeriodWeek, expected: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FixedCostDeduction(3000, now, tt.period), 1e-9)
		})
	}

	assert.Equal(t, 0.0, FixedCostDeduction(0, now, domain.PeriodMonth))
}
