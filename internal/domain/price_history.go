package domain

import "time"

// PriceHistoryEntry registra uma alteração no custo de um insumo
type PriceHistoryEntry struct {
	ID               string    `json:"id"`
	IngredientID     string    `json:"ingredient_id"`
	IngredientName   string    `json:"ingredient_name"`
	PreviousPrice    float64   `json:"previous_price"`
	NewPrice         float64   `json:"new_price"`
	VariationPercent float64   `json:"variation_percent"`
	CreatedAt        time.Time `json:"created_at"`
}
