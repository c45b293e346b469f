package domain

const (
	DefaultTargetMarginPercent = 30.0
	DefaultAverageTaxPercent   = 10.0
	DefaultTargetCMVPercent    = 35.0
)

// ChannelFeeConfig representa a taxa cobrada por um canal de venda (ex.: iFood)
type ChannelFeeConfig struct {
	ID          string  `json:"id"`
	ChannelName string  `json:"channel_name"`
	FeePercent  float64 `json:"fee_percent"`
}

type FixedCost struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	MonthlyValue float64 `json:"monthly_value"`
}

// TotalFixedCostMonthly soma os custos fixos mensais
func TotalFixedCostMonthly(costs []FixedCost) float64 {
	total := 0.0
	for _, c := range costs {
		total += c.MonthlyValue
	}
	return total
}

// BusinessConfig contém as metas do negócio. Campos nil usam os valores padrão.
type BusinessConfig struct {
	BusinessID           string   `json:"business_id"`
	TargetMarginPercent  *float64 `json:"target_margin_percent,omitempty"`
	AverageTaxPercent    *float64 `json:"average_tax_percent,omitempty"`
	TargetCMVPercent     *float64 `json:"target_cmv_percent,omitempty"`
	MonthlyRevenueTarget *float64 `json:"monthly_revenue_target,omitempty"`
}

// ResolvedBusinessConfig é a configuração com os padrões aplicados
type ResolvedBusinessConfig struct {
	TargetMarginPercent  float64  `json:"target_margin_percent"`
	AverageTaxPercent    float64  `json:"average_tax_percent"`
	TargetCMVPercent     float64  `json:"target_cmv_percent"`
	MonthlyRevenueTarget *float64 `json:"monthly_revenue_target,omitempty"`
}

// DefaultTargets retorna as metas padrão documentadas (margem 30%, imposto 10%, CMV 35%)
func DefaultTargets() ResolvedBusinessConfig {
	return ResolvedBusinessConfig{
		TargetMarginPercent: DefaultTargetMarginPercent,
		AverageTaxPercent:   DefaultAverageTaxPercent,
		TargetCMVPercent:    DefaultTargetCMVPercent,
	}
}

func (c BusinessConfig) Resolve() ResolvedBusinessConfig {
	return c.ResolveWith(DefaultTargets())
}

// ResolveWith aplica os padrões informados aos campos não configurados
func (c BusinessConfig) ResolveWith(defaults ResolvedBusinessConfig) ResolvedBusinessConfig {
	resolved := defaults
	resolved.MonthlyRevenueTarget = c.MonthlyRevenueTarget

	if c.TargetMarginPercent != nil {
		resolved.TargetMarginPercent = *c.TargetMarginPercent
	}
	if c.AverageTaxPercent != nil {
		resolved.AverageTaxPercent = *c.AverageTaxPercent
	}
	if c.TargetCMVPercent != nil {
		resolved.TargetCMVPercent = *c.TargetCMVPercent
	}

	return resolved
}
