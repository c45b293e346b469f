package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/pkg/apiErrors"
	"github.com/vfg2006/margin-insights-api/pkg/log"
	"github.com/vfg2006/margin-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// businessID retorna o negócio do token. Escreve 401 e retorna false quando não há claims.
func businessID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.BusinessID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return claims.BusinessID, true
}

func periodParam(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), map[string]any{
			"accepted": []domain.Period{domain.PeriodToday, domain.PeriodWeek, domain.PeriodMonth, domain.PeriodLast30Days},
		})
		return "", false
	}
	return period, true
}

func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro positivo", nil)
		return 0, false
	}
	return limit, true
}
