package catalog

import (
	"testing"

	"tourvia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testTours() []models.Tour {
	return []models.Tour{
		{ID: "t1", Name: "Langkawi Island Escape", Destination: "Langkawi", Category: "island", Price: "RM 1,200"},
		{ID: "t2", Name: "Cameron Highlands Trek", Destination: "Pahang", Category: "hiking", Price: "RM 450"},
		{ID: "t3", Name: "Borneo Dive Safari", Location: "Sipadan", Type: "diving", Price: "contact us"},
	}
}

func seededCatalog() *DefaultCatalogService {
	svc := NewCatalogService(nil, zap.NewNop())
	svc.Replace(testTours())
	return svc
}

func TestFilter_NilCriteriaResetsToFullSet(t *testing.T) {
	svc := seededCatalog()
	assert.Len(t, svc.Filter(nil), 3)
}

func TestFilter_EmptyCriteriaMatchesEverything(t *testing.T) {
	svc := seededCatalog()
	result := svc.Filter(&models.FilterCriteria{})
	assert.Len(t, result, 3)
}

func TestFilter_BlankTermsImposeNoConstraint(t *testing.T) {
	svc := seededCatalog()

	result := svc.Filter(&models.FilterCriteria{Destinations: []string{"", "  "}})
	assert.Len(t, result, 3)

	// A blank term alongside a real one does not widen the match.
	result = svc.Filter(&models.FilterCriteria{Destinations: []string{"", "langkawi"}})
	require.Len(t, result, 1)
	assert.Equal(t, "t1", result[0].ID)
}

func TestFilter_DestinationMatchesNameAndLocationCaseInsensitively(t *testing.T) {
	svc := seededCatalog()

	result := svc.Filter(&models.FilterCriteria{Destinations: []string{"LANGKAWI"}})
	require.Len(t, result, 1)
	assert.Equal(t, "t1", result[0].ID)

	// Location field participates in destination matching.
	result = svc.Filter(&models.FilterCriteria{Destinations: []string{"sipadan"}})
	require.Len(t, result, 1)
	assert.Equal(t, "t3", result[0].ID)
}

func TestFilter_CategoryMatchesTypeField(t *testing.T) {
	svc := seededCatalog()
	result := svc.Filter(&models.FilterCriteria{Categories: []string{"diving"}})
	require.Len(t, result, 1)
	assert.Equal(t, "t3", result[0].ID)
}

func TestFilter_PriceBounds(t *testing.T) {
	svc := seededCatalog()
	min := 1000.0
	max := 1500.0

	result := svc.Filter(&models.FilterCriteria{PriceRange: &models.PriceRange{Min: &min, Max: &max}})

	ids := make([]string, 0, len(result))
	for _, tour := range result {
		ids = append(ids, tour.ID)
	}
	// t1 (1200) is in range; t2 (450) is not; t3 is unparsable and passes every bound.
	assert.ElementsMatch(t, []string{"t1", "t3"}, ids)
}

func TestFilter_MinBoundExcludes(t *testing.T) {
	svc := seededCatalog()
	min := 1300.0

	result := svc.Filter(&models.FilterCriteria{PriceRange: &models.PriceRange{Min: &min}})

	for _, tour := range result {
		assert.NotEqual(t, "t1", tour.ID)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"RM 1,200", 1200, true},
		{"RM 450", 450, true},
		{"1200.50", 1200.50, true},
		{"$99.90", 99.90, true},
		{"contact us", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParsePrice(tc.in)
		assert.Equal(t, tc.valid, ok, tc.in)
		if tc.valid {
			assert.InDelta(t, tc.want, got, 0.001, tc.in)
		}
	}
}
