package files

import (
	"encoding/json"
	"os"
)

type jsonParser[T any] struct{}

func (jsonParser[T]) parse(data []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JSONExporter writes the captured entities as one indented array.
type JSONExporter struct {
	aggregate
}

func (e *JSONExporter) SaveToFile(path string) error {
	data, err := json.MarshalIndent(e.values(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
