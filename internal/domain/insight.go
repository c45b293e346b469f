package domain

import "time"

type InsightStatus string

const (
	InsightStatusSuccess InsightStatus = "success"
	InsightStatusWarning InsightStatus = "warning"
	InsightStatusAlert   InsightStatus = "alert"
	InsightStatusNeutral InsightStatus = "neutral"
)

// InsightAction é a navegação sugerida para a camada de apresentação
type InsightAction struct {
	Label    string `json:"label"`
	Route    string `json:"route"`
	EntityID string `json:"entity_id,omitempty"`
}

// InsightCandidate é uma recomendação gerada em uma avaliação. Não é alterada após criada.
type InsightCandidate struct {
	Kind     string         `json:"kind"`
	Status   InsightStatus  `json:"status"`
	Headline string         `json:"headline"`
	Detail   string         `json:"detail"`
	Priority int            `json:"priority"`
	Action   *InsightAction `json:"action,omitempty"`
}

// InsightResult é o resultado de uma avaliação do motor de insights
type InsightResult struct {
	Main       InsightCandidate   `json:"main"`
	Secondary  []InsightCandidate `json:"secondary"`
	Candidates []InsightCandidate `json:"candidates"`
	Changed    bool               `json:"changed"`
	ZeroState  bool               `json:"zero_state"`
}

// InsightRecord é a forma persistida de um insight selecionado
type InsightRecord struct {
	ID         string        `json:"id"`
	BusinessID string        `json:"business_id"`
	Kind       string        `json:"kind"`
	Status     InsightStatus `json:"status"`
	Headline   string        `json:"headline"`
	Detail     string        `json:"detail"`
	Priority   int           `json:"priority"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewInsightRecord cria o registro a partir do candidato selecionado
func NewInsightRecord(businessID string, candidate InsightCandidate) *InsightRecord {
	return &InsightRecord{
		BusinessID: businessID,
		Kind:       candidate.Kind,
		Status:     candidate.Status,
		Headline:   candidate.Headline,
		Detail:     candidate.Detail,
		Priority:   candidate.Priority,
	}
}
