package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrChannelNotFound = errors.New("canal de venda não configurado")
	ErrMissingCost     = errors.New("produto sem ficha técnica ou com custo desconhecido")
	ErrNonViablePrice  = errors.New("preço sugerido inviável: margem, impostos, custos fixos e taxas somam 100% ou mais")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// PricingError é um erro com contexto adicional para precificação
type PricingError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProductID string
	Details   string
}

func (e *PricingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PricingError) Unwrap() error {
	return e.Err
}

func NewPricingError(err error, code string, productID string, details string) *PricingError {
	return &PricingError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
