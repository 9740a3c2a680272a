package files

import (
	"path/filepath"
	"strings"
)

// NewImporter picks the import format from the file extension.
func NewImporter[T any](path string) (Importer[T], error) {
	switch normalizeExt(path) {
	case ".json":
		return importer[T]{p: jsonParser[T]{}}, nil
	case ".csv":
		return importer[T]{p: csvParser[T]{}}, nil
	case ".yaml", ".yml":
		return importer[T]{p: yamlParser[T]{}}, nil
	default:
		return nil, unsupportedFormat(normalizeExt(path))
	}
}

// NewExporter picks the export format from the file extension.
func NewExporter(path string) (ExportVisitor, error) {
	switch normalizeExt(path) {
	case ".json":
		return &JSONExporter{}, nil
	case ".csv":
		return &CSVExporter{}, nil
	case ".yaml", ".yml":
		return &YAMLExporter{}, nil
	default:
		return nil, unsupportedFormat(normalizeExt(path))
	}
}

func normalizeExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
