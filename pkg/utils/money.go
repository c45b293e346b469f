package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBRL formata um valor monetário no padrão brasileiro (R$ 1.234,56)
func FormatBRL(value float64) string {
	if value < 0 {
		return "-R$ " + humanize.FormatFloat("#.###,##", -value)
	}
	return "R$ " + humanize.FormatFloat("#.###,##", value)
}

// FormatPercent formata um percentual com uma casa decimal (12,5%)
func FormatPercent(value float64) string {
	return humanize.FormatFloat("#.###,#", value) + "%"
}

// FormatPoints formata uma diferença em pontos percentuais
func FormatPoints(value float64) string {
	return fmt.Sprintf("%s p.p.", humanize.FormatFloat("#.###,#", value))
}
