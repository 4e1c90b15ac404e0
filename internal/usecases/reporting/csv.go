package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

type Dataset string

const (
	DatasetClickStats Dataset = "click-stats"
	DatasetLeadStats  Dataset = "lead-stats"
	DatasetLeads      Dataset = "leads"
)

// Prefixos do arquivo baixado, um por dataset
var datasetLabels = map[Dataset]string{
	DatasetClickStats: "button-click-stats",
	DatasetLeadStats:  "lead-stats",
	DatasetLeads:      "lead-list",
}

func ParseDataset(value string) (Dataset, error) {
	dataset := Dataset(value)
	if _, ok := datasetLabels[dataset]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDataset, value)
	}
	return dataset, nil
}

// FileName segue o padrão <label>-<YYYY-MM-DD>.csv com a data em UTC
func (d Dataset) FileName(now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", datasetLabels[d], now.UTC().Format("2006-01-02"))
}

// CSVRow é uma linha exportável. O cabeçalho vem da primeira linha.
type CSVRow interface {
	CSVHeader() []string
	CSVRecord() []string
}

// ExportCSV escreve o cabeçalho e uma linha por registro, separadas por \n e
// sem quebra final. Valores com vírgula, aspas ou quebra de linha são
// colocados entre aspas, com aspas internas duplicadas. Sem linhas nada é escrito.
func ExportCSV[T CSVRow](w io.Writer, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(rows[0].CSVHeader()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row.CSVRecord()); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	_, err := w.Write(bytes.TrimSuffix(buffer.Bytes(), []byte("\n")))
	return err
}
