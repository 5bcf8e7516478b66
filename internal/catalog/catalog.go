// Package catalog loads the preset species list shipped with the binary.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed species.yaml
var defaultCatalog []byte

type catalogFile struct {
	Species []speciesEntry `yaml:"species"`
}

type speciesEntry struct {
	Name                 string `yaml:"name"`
	ScientificName       string `yaml:"scientific_name"`
	WateringIntervalDays int    `yaml:"watering_interval_days"`
}

// Load returns the embedded preset catalog.
func Load() ([]domain.Species, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalog. Every entry needs a name and an interval of
// at least one day; names must be unique ignoring case.
func Parse(data []byte) ([]domain.Species, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing species catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Species))
	out := make([]domain.Species, 0, len(f.Species))
	for i, e := range f.Species {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("species[%d]: name is required", i)
		}
		if e.WateringIntervalDays < 1 {
			return nil, fmt.Errorf("species[%d] %q: %w", i, name, domain.ErrInvalidInterval)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("species[%d]: duplicate name %q", i, name)
		}
		seen[key] = true
		out = append(out, domain.Species{
			ID:                   slug(name),
			Name:                 name,
			ScientificName:       strings.TrimSpace(e.ScientificName),
			WateringIntervalDays: e.WateringIntervalDays,
		})
	}
	return out, nil
}

func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
