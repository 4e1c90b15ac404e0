package reporting

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRow struct {
	A string
	B int
}

func (r sampleRow) CSVHeader() []string { return []string{"a", "b"} }

func (r sampleRow) CSVRecord() []string { return []string{r.A, strconv.Itoa(r.B)} }

func TestExportCSV(t *testing.T) {
	tests := []struct {
		name string
		rows []sampleRow
		want string
	}{
		{
			name: "valor com vírgula entre aspas",
			rows: []sampleRow{{A: "x,y", B: 1}, {A: "z", B: 2}},
			want: "a,b\n\"x,y\",1\nz,2",
		},
		{
			name: "aspas internas duplicadas",
			rows: []sampleRow{{A: `o "escritor"`, B: 3}},
			want: "a,b\n\"o \"\"escritor\"\"\",3",
		},
		{
			name: "quebra de linha dentro do valor",
			rows: []sampleRow{{A: "linha1\nlinha2", B: 4}},
			want: "a,b\n\"linha1\nlinha2\",4",
		},
		{
			name: "sem linhas",
			rows: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, ExportCSV(&out, tt.rows))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestExportCSV_DomainRows(t *testing.T) {
	created := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	var out bytes.Buffer
	err := ExportCSV(&out, []*domain.Lead{
		{ID: "l1", Email: "writer@example.com", Source: "hero", MarketingConsent: true, CreatedAt: created},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"id,email,source,marketing_consent,created_at\nl1,writer@example.com,hero,true,2025-04-02T09:30:00Z",
		out.String(),
	)
}

func TestParseDataset(t *testing.T) {
	dataset, err := ParseDataset("click-stats")
	require.NoError(t, err)
	assert.Equal(t, DatasetClickStats, dataset)

	_, err = ParseDataset("users")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestDataset_FileName(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	assert.Equal(t, "lead-list-2026-01-01.csv", DatasetLeads.FileName(now))
	assert.Equal(t, "button-click-stats-2026-01-01.csv", DatasetClickStats.FileName(now))
}
