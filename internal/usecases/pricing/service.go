package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/margin-insights-api/infrastructure/repository"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/costing"
	"github.com/vfg2006/margin-insights-api/pkg/apiErrors"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

type Pricer interface {
	ProductSuggestions(ctx context.Context, businessID, productID string) (*ProductPricing, error)
	ProductMargins(ctx context.Context, businessID string) ([]ProductMargin, error)
	ApplyPrice(ctx context.Context, businessID, productID, channel string) (*domain.ProductPriceChange, error)
}

// ProductPricing reúne o custo do produto e o preço sugerido por canal
type ProductPricing struct {
	ProductID        string       `json:"product_id"`
	ProductName      string       `json:"product_name"`
	CurrentPrice     float64      `json:"current_price"`
	CostKnown        bool         `json:"cost_known"`
	UnitCost         float64      `json:"unit_cost"`
	FixedCostPercent float64      `json:"fixed_cost_percent"`
	Suggestions      []Suggestion `json:"suggestions"`
}

type Service struct {
	productRepo    repository.ProductRepository
	saleRepo       repository.SaleRepository
	channelFeeRepo repository.ChannelFeeRepository
	fixedCostRepo  repository.FixedCostRepository
	configRepo     repository.BusinessConfigRepository
	defaults       domain.ResolvedBusinessConfig
	now            func() time.Time
}

func NewService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	channelFeeRepo repository.ChannelFeeRepository,
	fixedCostRepo repository.FixedCostRepository,
	configRepo repository.BusinessConfigRepository,
	defaults domain.ResolvedBusinessConfig,
) *Service {
	return &Service{
		productRepo:    productRepo,
		saleRepo:       saleRepo,
		channelFeeRepo: channelFeeRepo,
		fixedCostRepo:  fixedCostRepo,
		configRepo:     configRepo,
		defaults:       defaults,
		now:            time.Now,
	}
}

// WithClock substitui o relógio usado para o período de vendas
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type businessTargets struct {
	cfg              domain.ResolvedBusinessConfig
	fixedCostPercent float64
	fees             []domain.ChannelFeeConfig
}

func (s *Service) loadTargets(ctx context.Context, businessID string) (*businessTargets, error) {
	stored, err := s.configRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	cfg := s.defaults
	if stored != nil {
		cfg = stored.ResolveWith(s.defaults)
	}

	fixedCosts, err := s.fixedCostRepo.List(ctx, businessID)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	fees, err := s.channelFeeRepo.List(ctx, businessID)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return &businessTargets{
		cfg:              cfg,
		fixedCostPercent: FixedCostPercent(domain.TotalFixedCostMonthly(fixedCosts), cfg.MonthlyRevenueTarget),
		fees:             fees,
	}, nil
}

func (s *Service) ProductSuggestions(ctx context.Context, businessID, productID string) (*ProductPricing, error) {
	product, err := s.productRepo.GetByID(ctx, businessID, productID)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, err.Error())
	}
	if product == nil {
		return nil, NewPricingError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
	}

	ingredients, err := s.productRepo.ListIngredients(ctx, businessID)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, err.Error())
	}

	targets, err := s.loadTargets(ctx, businessID)
	if err != nil {
		return nil, err
	}

	cost := costing.RollupAll([]domain.Product{*product}, ingredients)[product.ID]

	pricing := &ProductPricing{
		ProductID:        product.ID,
		ProductName:      product.Name,
		CurrentPrice:     product.SalesPrice,
		FixedCostPercent: targets.fixedCostPercent,
		Suggestions:      []Suggestion{},
	}

	unitCost, known := cost.UnitCost()
	if !known {
		return pricing, nil
	}

	pricing.CostKnown = true
	pricing.UnitCost = unitCost
	pricing.Suggestions = SuggestPerChannel(unitCost, targets.cfg, targets.fixedCostPercent, targets.fees)

	return pricing, nil
}

// ProductMargins retorna a situação de margem dos produtos ativos com as vendas do mês corrente
func (s *Service) ProductMargins(ctx context.Context, businessID string) ([]ProductMargin, error) {
	products, err := s.productRepo.ListActiveWithRecipes(ctx, businessID)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	ingredients, err := s.productRepo.ListIngredients(ctx, businessID)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	targets, err := s.loadTargets(ctx, businessID)
	if err != nil {
		return nil, err
	}

	start, end := domain.PeriodMonth.Range(s.now())
	sales, err := s.saleRepo.ListByDateRange(ctx, businessID, start, end)
	if err != nil {
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	costs := costing.RollupAll(products, ingredients)
	return AnalyzeProductMargins(products, costs, targets.cfg, targets.fixedCostPercent, sales), nil
}

// ApplyPrice grava o preço sugerido para o canal informado (Balcão quando vazio).
// Sugestões inviáveis nunca são aplicadas.
func (s *Service) ApplyPrice(ctx context.Context, businessID, productID, channel string) (*domain.ProductPriceChange, error) {
	pricing, err := s.ProductSuggestions(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}

	if !pricing.CostKnown {
		return nil, NewPricingError(ErrMissingCost, apiErrors.ErrMissingCost, productID, "")
	}

	if strings.TrimSpace(channel) == "" {
		channel = domain.DefaultChannel
	}

	suggestion, found := findSuggestion(pricing.Suggestions, channel)
	if !found {
		return nil, NewPricingError(ErrChannelNotFound, apiErrors.ErrChannelNotFound, productID, channel)
	}

	if !suggestion.Viable {
		return nil, NewPricingError(ErrNonViablePrice, apiErrors.ErrNonViablePrice, productID,
			fmt.Sprintf("divisor %.2f", suggestion.Divisor))
	}

	newPrice := utils.RoundWithTwoDecimalPlace(suggestion.SuggestedPrice)
	change := &domain.ProductPriceChange{
		BusinessID:    businessID,
		ProductID:     productID,
		PreviousPrice: pricing.CurrentPrice,
		NewPrice:      newPrice,
		Reason:        fmt.Sprintf("preço sugerido (%s)", suggestion.Channel),
	}
	if pricing.CurrentPrice > 0 {
		change.VariationPercent = utils.RoundWithTwoDecimalPlace((newPrice - pricing.CurrentPrice) / pricing.CurrentPrice * 100)
	}

	if err := s.productRepo.UpdateSalesPrice(ctx, change); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewPricingError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
		}
		return nil, NewPricingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"business_id":    businessID,
		"product_id":     productID,
		"channel":        suggestion.Channel,
		"previous_price": change.PreviousPrice,
		"new_price":      change.NewPrice,
	}).Info("pricing: preço sugerido aplicado")

	return change, nil
}

func findSuggestion(suggestions []Suggestion, channel string) (Suggestion, bool) {
	for _, suggestion := range suggestions {
		if strings.EqualFold(suggestion.Channel, strings.TrimSpace(channel)) {
			return suggestion, true
		}
	}
	return Suggestion{}, false
}
