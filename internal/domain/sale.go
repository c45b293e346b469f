package domain

import (
	"strings"
	"time"
)

// DefaultChannel é o canal assumido quando a venda não informa canal
const DefaultChannel = "Balcão"

type Sale struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	TotalValue float64   `json:"total_value"`
	Quantity   float64   `json:"quantity"`
	Channel    *string   `json:"channel,omitempty"`
	Date       time.Time `json:"date"`
	ProductID  *string   `json:"product_id,omitempty"`

	// Valores do produto no momento da venda
	ProductSalesPrice *float64 `json:"product_sales_price,omitempty"`
	ProductUnitCost   *float64 `json:"product_unit_cost,omitempty"`
}

// EffectiveChannel retorna o canal da venda ou o canal padrão (Balcão)
func (s Sale) EffectiveChannel() string {
	if s.Channel == nil || strings.TrimSpace(*s.Channel) == "" {
		return DefaultChannel
	}
	return strings.TrimSpace(*s.Channel)
}

// TotalRevenue soma o valor total das vendas
func TotalRevenue(sales []Sale) float64 {
	total := 0.0
	for _, sale := range sales {
		total += sale.TotalValue
	}
	return total
}
