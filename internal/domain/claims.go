package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações carregadas no token de acesso.
// Todo acesso aos dados é restrito ao BusinessID do token.
type Claims struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	RoleID     int    `json:"role_id"`
	jwt.RegisteredClaims
}
