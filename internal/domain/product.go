package domain

import "time"

// Ingredient representa um insumo com custo por unidade de medida.
// Quando Recipe está preenchida o insumo é intermediário (ex.: massa base)
// e seu custo é derivado dos insumos que o compõem.
type Ingredient struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Unit     string       `json:"unit,omitempty"`
	UnitCost float64      `json:"unit_cost"`
	Recipe   []RecipeLine `json:"recipe,omitempty"`
}

// RecipeLine é uma linha da receita de um insumo intermediário
type RecipeLine struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

// BOMLine é uma linha da ficha técnica (bill of materials) de um produto
type BOMLine struct {
	ProductID    string      `json:"product_id"`
	IngredientID string      `json:"ingredient_id"`
	Quantity     float64     `json:"quantity"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
}

type Product struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Category   *string   `json:"category,omitempty"`
	SalesPrice float64   `json:"sales_price"`
	Ativo      bool      `json:"ativo"`
	Yield      *float64  `json:"yield,omitempty"` // Unidades produzidas pela receita
	BOM        []BOMLine `json:"bom,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasRecipe indica se o produto possui ficha técnica cadastrada
func (p Product) HasRecipe() bool {
	return len(p.BOM) > 0
}

// ProductPriceChange é o registro de histórico gravado ao aplicar um novo preço de venda
type ProductPriceChange struct {
	ID               string    `json:"id"`
	BusinessID       string    `json:"business_id"`
	ProductID        string    `json:"product_id"`
	PreviousPrice    float64   `json:"previous_price"`
	NewPrice         float64   `json:"new_price"`
	VariationPercent float64   `json:"variation_percent"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"created_at"`
}
