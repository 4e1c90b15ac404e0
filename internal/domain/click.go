package domain

import (
	"strconv"
	"time"
)

type ClickEvent struct {
	ID         string         `json:"id,omitempty"`
	ButtonType string         `json:"button_type"`
	UserIP     string         `json:"user_ip"`
	UserAgent  string         `json:"user_agent"`
	Referrer   string         `json:"referrer"`
	ButtonText string         `json:"button_text,omitempty"`
	ButtonURL  string         `json:"button_url,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ClickStats é uma linha da view sm_button_clicks_stats
type ClickStats struct {
	ButtonType string    `json:"button_type"`
	ClickCount int64     `json:"click_count"`
	FirstClick time.Time `json:"first_click"`
	LastClick  time.Time `json:"last_click"`
}

func (s ClickStats) CSVHeader() []string {
	return []string{"button_type", "click_count", "first_click", "last_click"}
}

func (s ClickStats) CSVRecord() []string {
	return []string{
		s.ButtonType,
		strconv.FormatInt(s.ClickCount, 10),
		formatTimestamp(s.FirstClick),
		formatTimestamp(s.LastClick),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
