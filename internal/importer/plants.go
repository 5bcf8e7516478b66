// Package importer reads plant lists exported by sprout (or hand-written in
// the same shape) back into domain plants.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
)

// ErrMalformedImport is returned when the input is not a JSON array.
var ErrMalformedImport = errors.New("import file is not a JSON array of plants")

// ParsePlants decodes a JSON array of plant records. Only a top-level parse
// failure is an error: elements whose fields have the wrong type keep the
// fields that did decode and pass through unvalidated.
func ParsePlants(r io.Reader) ([]*domain.Plant, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	plants := make([]*domain.Plant, 0, len(raw))
	for _, elem := range raw {
		var rec contract.PlantRecord
		var typeErr *json.UnmarshalTypeError
		if err := json.Unmarshal(elem, &rec); err != nil && !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
		}
		plants = append(plants, rec.Plant())
	}
	return plants, nil
}

// LoadFile reads and parses a plant import file.
func LoadFile(path string) ([]*domain.Plant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePlants(f)
}
