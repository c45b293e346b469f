package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/margin-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/margin-insights-api/pkg/apiErrors"
	"github.com/vfg2006/margin-insights-api/pkg/log"
)

func writeInsightError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error("insights: " + message)

	if errors.Is(err, insighting.ErrInsightNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrInsightNotFound, err.Error(), nil)
		return
	}
	if errors.Is(err, insighting.ErrDatabaseOperation) {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

// GetInsights avalia as regras no período e retorna o insight principal e os secundários
func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}
		period, ok := periodParam(w, r)
		if !ok {
			return
		}

		previousHeadline := r.URL.Query().Get("previous_headline")

		result, err := service.Evaluate(r.Context(), business, period, previousHeadline)
		if err != nil {
			writeInsightError(w, r, err, "erro ao avaliar insights")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"period":       period,
			"insight_kind": result.Main.Kind,
		}).Info("insights: avaliação retornada")

		writeJSON(w, r, http.StatusOK, result)
	})
}

func ListInsightHistory(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}
		limit, ok := limitParam(w, r)
		if !ok {
			return
		}

		records, err := service.ListInsights(r.Context(), business, limit)
		if err != nil {
			writeInsightError(w, r, err, "erro ao listar histórico de insights")
			return
		}

		writeJSON(w, r, http.StatusOK, records)
	})
}

func DeleteInsight(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do insight é obrigatório", nil)
			return
		}

		if err := service.DeleteInsight(r.Context(), business, id); err != nil {
			writeInsightError(w, r, err, "erro ao remover insight")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetChannelMargins retorna a margem real de cada canal de venda no período
func GetChannelMargins(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}
		period, ok := periodParam(w, r)
		if !ok {
			return
		}

		analysis, err := service.ChannelMargins(r.Context(), business, period)
		if err != nil {
			writeInsightError(w, r, err, "erro ao calcular margem por canal")
			return
		}

		writeJSON(w, r, http.StatusOK, analysis)
	})
}

func GetDashboardSummary(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}
		period, ok := periodParam(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(r.Context(), business, period)
		if err != nil {
			writeInsightError(w, r, err, "erro ao calcular resumo do período")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}
