package insighting

import "errors"

var (
	ErrInsightNotFound   = errors.New("insight não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
