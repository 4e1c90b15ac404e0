package domain

import "time"

const ConversionUnmeasurable = "unmeasurable"

type DashboardState string

const (
	DashboardUnauthenticated DashboardState = "unauthenticated"
	DashboardAuthenticating  DashboardState = "authenticating"
	DashboardLoading         DashboardState = "loading"
	DashboardError           DashboardState = "error"
	DashboardLoaded          DashboardState = "loaded"
)

type DisplayMode string

const (
	DisplayOverview DisplayMode = "overview"
	DisplayLeadList DisplayMode = "leads"
)

// ParseDisplayMode devolve overview para qualquer valor desconhecido
func ParseDisplayMode(value string) DisplayMode {
	if DisplayMode(value) == DisplayLeadList {
		return DisplayLeadList
	}
	return DisplayOverview
}

type ReportErrorKind string

const (
	ReportSchemaMissing    ReportErrorKind = "schema_missing"
	ReportPermissionDenied ReportErrorKind = "permission_denied"
	ReportUnexpected       ReportErrorKind = "unexpected"
)

type ReportError struct {
	Kind     ReportErrorKind `json:"kind"`
	Message  string          `json:"message"`
	SetupSQL string          `json:"setup_sql,omitempty"`
}

type ReportSummary struct {
	TotalClicks    int64      `json:"total_clicks"`
	TotalLeads     int64      `json:"total_leads"`
	ConversionRate string     `json:"conversion_rate"`
	LastClick      *time.Time `json:"last_click,omitempty"`
	LastClickType  string     `json:"last_click_type,omitempty"`
	LastLead       *time.Time `json:"last_lead,omitempty"`
	LastLeadSource string     `json:"last_lead_source,omitempty"`
}

type Report struct {
	State       DashboardState `json:"state"`
	Degraded    bool           `json:"degraded"`
	ClickStats  []*ClickStats  `json:"click_stats"`
	LeadStats   []*LeadStats   `json:"lead_stats"`
	Leads       []*Lead        `json:"leads"`
	Summary     ReportSummary  `json:"summary"`
	Error       *ReportError   `json:"error,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}
