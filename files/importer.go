package files

import (
	"os"
)

// Importer reads a whole file into a slice of records. T is one of the
// request types; the three formats share one template: read the file, hand
// the bytes to the format parser.
type Importer[T any] interface {
	Import(path string) ([]T, error)
}

type parser[T any] interface {
	parse(data []byte) ([]T, error)
}

type importer[T any] struct {
	p parser[T]
}

func (i importer[T]) Import(path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return i.p.parse(data)
}
