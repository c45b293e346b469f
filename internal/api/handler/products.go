package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/margin-insights-api/internal/usecases/pricing"
	"github.com/vfg2006/margin-insights-api/pkg/apiErrors"
	"github.com/vfg2006/margin-insights-api/pkg/log"
)

type applyPriceRequest struct {
	Channel string `json:"channel"`
}

func writePricingError(w http.ResponseWriter, r *http.Request, err error) {
	var pricingErr *pricing.PricingError
	if errors.As(err, &pricingErr) {
		if apiErrors.StatusFor(pricingErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("pricing: erro na operação")
		}
		apiErrors.WriteError(w, pricingErr.Code, pricingErr.Err.Error(), map[string]any{
			"product_id": pricingErr.ProductID,
			"details":    pricingErr.Details,
		})
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("pricing: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar precificação", nil)
}

// GetProductMargins lista margem, CMV e preço sugerido de cada produto ativo
func GetProductMargins(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}

		margins, err := service.ProductMargins(r.Context(), business)
		if err != nil {
			writePricingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, margins)
	})
}

func GetPriceSuggestions(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		suggestions, err := service.ProductSuggestions(r.Context(), business, productID)
		if err != nil {
			writePricingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, suggestions)
	})
}

// ApplyPrice grava o preço sugerido do canal informado como novo preço de venda.
// Sem corpo ou sem canal, aplica a sugestão do balcão.
func ApplyPrice(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessID(w, r)
		if !ok {
			return
		}

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req applyPriceRequest
		if r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
				return
			}
		}

		change, err := service.ApplyPrice(r.Context(), business, productID, req.Channel)
		if err != nil {
			writePricingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, change)
	})
}
