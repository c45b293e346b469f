// Package insighting avalia as regras de negócio sobre vendas, custos e metas
// e seleciona a recomendação principal do período
package insighting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

const (
	// DefaultMaxSecondary limita a lista de insights secundários exibida no detalhamento
	DefaultMaxSecondary = 5
	// SecondaryMinPriority é a prioridade mínima para um candidato aparecer como secundário
	SecondaryMinPriority = 6
)

type Engine struct {
	rules        []Rule
	maxSecondary int
	defaults     domain.ResolvedBusinessConfig
}

// NewEngine cria o motor com as regras informadas. maxSecondary negativo usa o padrão.
func NewEngine(rules []Rule, maxSecondary int, defaults domain.ResolvedBusinessConfig) *Engine {
	if maxSecondary < 0 {
		maxSecondary = DefaultMaxSecondary
	}

	return &Engine{
		rules:        rules,
		maxSecondary: maxSecondary,
		defaults:     defaults,
	}
}

// Evaluate executa todas as regras sobre o snapshot. É determinístico: o mesmo snapshot
// produz sempre os mesmos candidatos e a mesma seleção.
func (e *Engine) Evaluate(snap Snapshot, previousHeadline string) domain.InsightResult {
	if len(snap.Sales) == 0 {
		return zeroState(previousHeadline)
	}

	eval := derive(snap, e.defaults)

	for _, rule := range e.rules {
		found := rule.Check(eval)
		if found == nil {
			continue
		}

		eval.fired = append(eval.fired, domain.InsightCandidate{
			Kind:     rule.Kind,
			Status:   rule.Status,
			Headline: found.Headline,
			Detail:   found.Detail,
			Priority: rule.Priority,
			Action:   found.Action,
		})
	}

	if len(eval.fired) == 0 {
		main := allHealthy(eval)
		return domain.InsightResult{
			Main:       main,
			Secondary:  []domain.InsightCandidate{},
			Candidates: []domain.InsightCandidate{main},
			Changed:    main.Headline != previousHeadline,
		}
	}

	candidates := make([]domain.InsightCandidate, len(eval.fired))
	copy(candidates, eval.fired)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority > candidates[j].Priority
	})

	return domain.InsightResult{
		Main:       candidates[0],
		Secondary:  e.secondary(candidates[1:]),
		Candidates: candidates,
		Changed:    candidates[0].Headline != previousHeadline,
	}
}

func (e *Engine) secondary(rest []domain.InsightCandidate) []domain.InsightCandidate {
	secondary := make([]domain.InsightCandidate, 0, e.maxSecondary)
	for _, candidate := range rest {
		if len(secondary) >= e.maxSecondary {
			break
		}
		if candidate.Priority >= SecondaryMinPriority {
			secondary = append(secondary, candidate)
		}
	}
	return secondary
}

func zeroState(previousHeadline string) domain.InsightResult {
	main := domain.InsightCandidate{
		Kind:     KindZeroState,
		Status:   domain.InsightStatusNeutral,
		Headline: "Registre suas primeiras vendas",
		Detail:   "Sem vendas no período ainda não é possível calcular margens, metas e tendências.",
		Action:   &domain.InsightAction{Label: "Registrar venda", Route: routeNewSale},
	}

	return domain.InsightResult{
		Main:       main,
		Secondary:  []domain.InsightCandidate{},
		Candidates: []domain.InsightCandidate{},
		Changed:    main.Headline != previousHeadline,
		ZeroState:  true,
	}
}

func allHealthy(e *evaluation) domain.InsightCandidate {
	return domain.InsightCandidate{
		Kind:     KindAllHealthy,
		Status:   domain.InsightStatusSuccess,
		Headline: fmt.Sprintf("Tudo em ordem: %s faturados no período", utils.FormatBRL(e.revenue)),
		Detail:   fmt.Sprintf("%d venda(s) sem alertas de margem, custos de insumos, canais ou metas.", len(e.snap.Sales)),
		Action:   &domain.InsightAction{Label: "Ver financeiro", Route: routeFinance},
	}
}
