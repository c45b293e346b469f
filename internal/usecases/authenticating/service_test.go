package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/internal/config"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

func newTestService(secret string) *Service {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}}).(*Service)
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := newTestService("segredo")

	token, err := service.GenerateToken("user-1", "biz-1", 3, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "biz-1", claims.BusinessID)
	assert.Equal(t, 3, claims.RoleID)
}

func TestService_ValidateToken(t *testing.T) {
	issuer := newTestService("segredo")

	expired := newTestService("segredo")
	expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expiredToken, err := expired.GenerateToken("user-1", "biz-1", 3, time.Hour)
	require.NoError(t, err)

	otherSecret, err := newTestService("outro").GenerateToken("user-1", "biz-1", 3, time.Hour)
	require.NoError(t, err)

	noBusiness := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noBusinessToken, err := noBusiness.SignedString([]byte("segredo"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "Token expirado", token: expiredToken, wantErr: ErrExpiredToken},
		{name: "Assinado com outro segredo", token: otherSecret, wantErr: ErrInvalidToken},
		{name: "Token sem business_id", token: noBusinessToken, wantErr: ErrInvalidToken},
		{name: "Token malformado", token: "abc.def", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestService_GenerateToken_RequiresBusiness(t *testing.T) {
	_, err := newTestService("segredo").GenerateToken("user-1", "", 1, time.Hour)

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
