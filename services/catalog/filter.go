package catalog

import (
	"strconv"
	"strings"

	"tourvia/models"
)

// Filter applies the criteria to the current snapshot. A nil criteria
// resets to the unfiltered set.
func (s *DefaultCatalogService) Filter(criteria *models.FilterCriteria) []models.Tour {
	snapshot := s.Snapshot()
	if criteria == nil {
		return snapshot
	}

	filtered := make([]models.Tour, 0, len(snapshot))
	for _, t := range snapshot {
		if Matches(t, criteria) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Matches reports whether a tour passes the filter criteria.
func Matches(t models.Tour, c *models.FilterCriteria) bool {
	if !matchesAny(c.Destinations, t.Destination, t.Location, t.Name) {
		return false
	}
	if !matchesAny(c.Categories, t.Category, t.Type) {
		return false
	}
	return matchesPrice(t.Price, c.PriceRange)
}

// matchesAny passes when any field case-insensitively contains any term.
// Blank terms impose no constraint, so a list of only blanks matches
// everything just like an empty list.
func matchesAny(terms []string, fields ...string) bool {
	constrained := false
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		constrained = true
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
	}
	return !constrained
}

// matchesPrice checks the parsed price against the range. Tours whose price
// cannot be parsed pass every bound.
func matchesPrice(price string, r *models.PriceRange) bool {
	if r == nil {
		return true
	}
	value, ok := ParsePrice(price)
	if !ok {
		return true
	}
	if r.Min != nil && value < *r.Min {
		return false
	}
	if r.Max != nil && value > *r.Max {
		return false
	}
	return true
}

// ParsePrice extracts a numeric value from a display price such as
// "RM 1,200". All characters other than digits and the decimal point are
// stripped before conversion.
func ParsePrice(price string) (float64, bool) {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
