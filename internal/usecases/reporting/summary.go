package reporting

import (
	"fmt"
	"slices"

	"github.com/storymaker/tracking-api/internal/domain"
)

// ConversionRate devolve leads/cliques em porcentagem com uma casa decimal,
// ou "unmeasurable" quando algum dos totais é zero.
func ConversionRate(clicks, leads int64) string {
	if clicks == 0 || leads == 0 {
		return domain.ConversionUnmeasurable
	}
	return fmt.Sprintf("%.1f%%", float64(leads)/float64(clicks)*100)
}

func Summarize(clickStats []*domain.ClickStats, leadStats []*domain.LeadStats) domain.ReportSummary {
	summary := domain.ReportSummary{}

	for _, stat := range clickStats {
		summary.TotalClicks += stat.ClickCount
	}
	for _, stat := range leadStats {
		summary.TotalLeads += stat.LeadCount
	}
	summary.ConversionRate = ConversionRate(summary.TotalClicks, summary.TotalLeads)

	if len(clickStats) > 0 {
		sorted := slices.Clone(clickStats)
		slices.SortStableFunc(sorted, func(a, b *domain.ClickStats) int {
			return b.LastClick.Compare(a.LastClick)
		})
		last := sorted[0].LastClick
		summary.LastClick = &last
		summary.LastClickType = sorted[0].ButtonType
	}

	if len(leadStats) > 0 {
		sorted := slices.Clone(leadStats)
		slices.SortStableFunc(sorted, func(a, b *domain.LeadStats) int {
			return b.LastLead.Compare(a.LastLead)
		})
		last := sorted[0].LastLead
		summary.LastLead = &last
		summary.LastLeadSource = sorted[0].Source
	}

	return summary
}
