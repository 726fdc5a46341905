// Package catalog projects the three dataset shapes into ResultRecords.
// Every function is pure: the dataset is never modified and each call returns a fresh slice.
package catalog

import (
	"fmt"
	"strings"

	"travel/internal/domain"
)

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Beaches returns every beach as a ResultRecord.
func Beaches(ds *domain.Dataset) []domain.ResultRecord {
	if ds == nil {
		return []domain.ResultRecord{}
	}
	return records(ds.Beaches)
}

// Temples returns every temple as a ResultRecord.
func Temples(ds *domain.Dataset) []domain.ResultRecord {
	if ds == nil {
		return []domain.ResultRecord{}
	}
	return records(ds.Temples)
}

// CountryCities flattens the cities of all countries, in country order then city order.
func CountryCities(ds *domain.Dataset) []domain.ResultRecord {
	out := []domain.ResultRecord{}
	if ds == nil {
		return out
	}
	for _, c := range ds.Countries {
		for _, city := range c.Cities {
			out = append(out, domain.RecordFromPlace(city))
		}
	}
	return out
}

// CityFor returns the cities of the first country whose normalized name equals
// the normalized countryName, or domain.ErrNotFound.
func CityFor(ds *domain.Dataset, countryName string) ([]domain.ResultRecord, error) {
	q := Normalize(countryName)
	if ds != nil {
		for _, c := range ds.Countries {
			if Normalize(c.Name) == q {
				return records(c.Cities), nil
			}
		}
	}
	return nil, fmt.Errorf("country %q: %w", countryName, domain.ErrNotFound)
}

func records(places []domain.Place) []domain.ResultRecord {
	out := make([]domain.ResultRecord, 0, len(places))
	for _, p := range places {
		out = append(out, domain.RecordFromPlace(p))
	}
	return out
}
