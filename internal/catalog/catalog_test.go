package catalog

import (
	"testing"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalogIsValid(t *testing.T) {
	species, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, species)

	for _, s := range species {
		assert.NotEmpty(t, s.ID)
		assert.GreaterOrEqual(t, s.WateringIntervalDays, 1, s.Name)
	}
}

func TestParse(t *testing.T) {
	species, err := Parse([]byte(`
species:
  - name: Snake Plant
    scientific_name: Dracaena trifasciata
    watering_interval_days: 14
`))
	require.NoError(t, err)
	require.Len(t, species, 1)
	assert.Equal(t, domain.Species{
		ID:                   "snake-plant",
		Name:                 "Snake Plant",
		ScientificName:       "Dracaena trifasciata",
		WateringIntervalDays: 14,
	}, species[0])
}

func TestParse_RejectsZeroInterval(t *testing.T) {
	_, err := Parse([]byte(`
species:
  - name: Cactus
    watering_interval_days: 0
`))
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestParse_RejectsDuplicateNames(t *testing.T) {
	_, err := Parse([]byte(`
species:
  - name: Fern
    watering_interval_days: 3
  - name: fern
    watering_interval_days: 4
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("species: [::"))
	assert.Error(t, err)
}
