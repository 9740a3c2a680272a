package files

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// The CSV layout is a hybrid: regular CSV framing, JSON payloads. Export
// writes a Type,Data header and one row per entity with the JSON blob in the
// Data cell; import only needs the Data column, so files produced by third
// parties may carry a lone Data header. Round-tripping through CSV is
// therefore lossless.

type csvParser[T any] struct{}

func (csvParser[T]) parse(data []byte) ([]T, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrMissingDataColumn
	}
	dataCol := -1
	for i, name := range rows[0] {
		if name == "Data" {
			dataCol = i
			break
		}
	}
	if dataCol == -1 {
		return nil, ErrMissingDataColumn
	}
	out := make([]T, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if dataCol >= len(row) {
			return nil, fmt.Errorf("%w: row %d", ErrMissingDataColumn, n+2)
		}
		var rec T
		if err := json.Unmarshal([]byte(row[dataCol]), &rec); err != nil {
			return nil, fmt.Errorf("csv: row %d: %w", n+2, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

type CSVExporter struct {
	aggregate
}

func (e *CSVExporter) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Type", "Data"}); err != nil {
		return err
	}
	for _, r := range e.records {
		blob, err := json.Marshal(r.value)
		if err != nil {
			return err
		}
		if err := w.Write([]string{r.kind, string(blob)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
