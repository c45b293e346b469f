package repository

import (
	"database/sql"

	"github.com/pkg/errors"
)

// ErrNotFound é retornado quando a operação exige um registro que não existe
var ErrNotFound = errors.New("registro não encontrado")

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func float64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
