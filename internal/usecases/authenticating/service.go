package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/margin-insights-api/internal/config"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

// DefaultTokenTTL é a validade padrão dos tokens emitidos
const DefaultTokenTTL = 24 * time.Hour

// Authenticator valida os tokens de acesso da API.
// A emissão dos tokens fica a cargo do serviço de identidade, GenerateToken existe para ferramentas internas.
type Authenticator interface {
	GenerateToken(userID, businessID string, roleID int, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
		now:    time.Now,
	}
}

func (s *Service) GenerateToken(userID, businessID string, roleID int, ttl time.Duration) (string, error) {
	if businessID == "" {
		return "", NewAuthError(ErrMissingRequiredData, "business_id")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	issuedAt := s.now()
	claims := domain.Claims{
		UserID:     userID,
		BusinessID: businessID,
		RoleID:     roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, err.Error())
		}
		logrus.WithError(err).Debug("auth: token rejeitado")
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.BusinessID == "" {
		return nil, NewAuthError(ErrInvalidToken, "token sem business_id")
	}

	return claims, nil
}
