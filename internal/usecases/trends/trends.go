// Package trends detecta variação semanal de faturamento e inflação no custo dos insumos
package trends

import (
	"sort"
	"time"

	"github.com/vfg2006/margin-insights-api/internal/domain"
)

const (
	// InflationWindowDays é a janela considerada para inflação de insumos
	InflationWindowDays = 30
	// InflationThresholdPercent é a inflação acumulada mínima para alertar
	InflationThresholdPercent = 15.0
)

type WeeklyTrend struct {
	CurrentWeekStart time.Time `json:"current_week_start"`
	CurrentRevenue   float64   `json:"current_revenue"`
	PreviousRevenue  float64   `json:"previous_revenue"`
	VariationPercent *float64  `json:"variation_percent,omitempty"`
}

// Weekly compara o faturamento da semana corrente (iniciada no domingo) com a semana anterior
func Weekly(sales []domain.Sale, now time.Time) WeeklyTrend {
	currentStart := domain.StartOfWeek(now)
	previousStart := currentStart.AddDate(0, 0, -7)

	trend := WeeklyTrend{CurrentWeekStart: currentStart}

	for _, sale := range sales {
		switch {
		case sale.Date.Before(previousStart) || sale.Date.After(now):
			continue
		case sale.Date.Before(currentStart):
			trend.PreviousRevenue += sale.TotalValue
		default:
			trend.CurrentRevenue += sale.TotalValue
		}
	}

	if trend.PreviousRevenue != 0 {
		variation := (trend.CurrentRevenue - trend.PreviousRevenue) / trend.PreviousRevenue * 100
		trend.VariationPercent = &variation
	}

	return trend
}

type InflationAlert struct {
	IngredientID        string  `json:"ingredient_id"`
	IngredientName      string  `json:"ingredient_name"`
	CumulativeVariation float64 `json:"cumulative_variation"`
	LatestPrice         float64 `json:"latest_price"`
	Changes             int     `json:"changes"`

	latestAt time.Time
}

// IngredientInflation soma as altas de preço de cada insumo nos últimos 30 dias
// (acumulado simples, sem composição) e retorna os insumos acima de 15%, do maior para o menor
func IngredientInflation(entries []domain.PriceHistoryEntry, now time.Time) []InflationAlert {
	windowStart := now.AddDate(0, 0, -InflationWindowDays)

	index := make(map[string]int)
	grouped := make([]InflationAlert, 0)

	for _, entry := range entries {
		if entry.CreatedAt.Before(windowStart) || entry.CreatedAt.After(now) {
			continue
		}
		if entry.VariationPercent <= 0 {
			continue
		}

		position, exists := index[entry.IngredientID]
		if !exists {
			position = len(grouped)
			index[entry.IngredientID] = position
			grouped = append(grouped, InflationAlert{
				IngredientID:   entry.IngredientID,
				IngredientName: entry.IngredientName,
			})
		}

		alert := &grouped[position]
		alert.CumulativeVariation += entry.VariationPercent
		alert.Changes++
		if !entry.CreatedAt.Before(alert.latestAt) {
			alert.latestAt = entry.CreatedAt
			alert.LatestPrice = entry.NewPrice
			if entry.IngredientName != "" {
				alert.IngredientName = entry.IngredientName
			}
		}
	}

	alerts := make([]InflationAlert, 0, len(grouped))
	for _, alert := range grouped {
		if alert.CumulativeVariation >= InflationThresholdPercent {
			alerts = append(alerts, alert)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CumulativeVariation > alerts[j].CumulativeVariation
	})

	return alerts
}
