package files

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML carries exactly the JSON field layout, so both directions go through
// the JSON form. yaml.v3 never calls encoding.TextUnmarshaler, so decoding
// YAML straight into the decimal fields is not an option; the bridge keeps
// amounts as strings end to end and makes the importer tolerate unknown
// fields for free.

type yamlParser[T any] struct{}

func (yamlParser[T]) parse(data []byte) ([]T, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	blob, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(blob, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type YAMLExporter struct {
	aggregate
}

func (e *YAMLExporter) SaveToFile(path string) error {
	blob, err := json.Marshal(e.values())
	if err != nil {
		return err
	}
	var raw []map[string]any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return err
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
