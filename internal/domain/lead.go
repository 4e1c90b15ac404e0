package domain

import (
	"strconv"
	"strings"
	"time"
)

// Sufixos gravados pelo cliente antigo em source quando não existia a coluna marketing_consent
const (
	LegacyMarketingYesSuffix = "_marketing_yes"
	LegacyMarketingNoSuffix  = "_marketing_no"
)

type Lead struct {
	ID               string    `json:"id,omitempty"`
	Email            string    `json:"email"`
	Source           string    `json:"source"`
	MarketingConsent bool      `json:"marketing_consent"`
	CreatedAt        time.Time `json:"created_at"`
}

func (l Lead) CSVHeader() []string {
	return []string{"id", "email", "source", "marketing_consent", "created_at"}
}

func (l Lead) CSVRecord() []string {
	return []string{
		l.ID,
		l.Email,
		l.Source,
		strconv.FormatBool(l.MarketingConsent),
		formatTimestamp(l.CreatedAt),
	}
}

// SplitLegacySource separa o sufixo de consentimento legado de source.
// ok é falso quando source não usa a codificação antiga.
func SplitLegacySource(source string) (base string, consent bool, ok bool) {
	switch {
	case strings.HasSuffix(source, LegacyMarketingYesSuffix):
		return strings.TrimSuffix(source, LegacyMarketingYesSuffix), true, true
	case strings.HasSuffix(source, LegacyMarketingNoSuffix):
		return strings.TrimSuffix(source, LegacyMarketingNoSuffix), false, true
	default:
		return source, false, false
	}
}

// LeadStats é uma linha da view sm_leads_stats
type LeadStats struct {
	Source    string    `json:"source"`
	LeadCount int64     `json:"lead_count"`
	FirstLead time.Time `json:"first_lead"`
	LastLead  time.Time `json:"last_lead"`
}

func (s LeadStats) CSVHeader() []string {
	return []string{"source", "lead_count", "first_lead", "last_lead"}
}

func (s LeadStats) CSVRecord() []string {
	return []string{
		s.Source,
		strconv.FormatInt(s.LeadCount, 10),
		formatTimestamp(s.FirstLead),
		formatTimestamp(s.LastLead),
	}
}

type LeadFilters struct {
	Source    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     uint64
	Ascending bool
}
