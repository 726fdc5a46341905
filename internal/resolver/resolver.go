// Package resolver maps a free-text query onto one of the catalog result sets.
package resolver

import (
	"errors"

	"travel/internal/catalog"
	"travel/internal/domain"
	"travel/internal/logger"
)

// MaxResults caps every result list. Records past the cap are dropped.
const MaxResults = 10

type keyword struct {
	category domain.Category
	singular string
	plural   string
	extract  func(*domain.Dataset) []domain.ResultRecord
}

// Plurals are listed, not derived: "country" does not take a plain "s".
var keywords = []keyword{
	{domain.CategoryBeach, "beach", "beaches", catalog.Beaches},
	{domain.CategoryTemple, "temple", "temples", catalog.Temples},
	{domain.CategoryCountry, "country", "countries", catalog.CountryCities},
}

// Classify reports the category whose singular or plural form equals q exactly.
// q must already be normalized.
func Classify(q string) (domain.Category, bool) {
	for _, k := range keywords {
		if q == k.singular || q == k.plural {
			return k.category, true
		}
	}
	return 0, false
}

// Extract returns every record of category c, uncapped.
func Extract(ds *domain.Dataset, c domain.Category) []domain.ResultRecord {
	for _, k := range keywords {
		if k.category == c {
			return k.extract(ds)
		}
	}
	return []domain.ResultRecord{}
}

// Resolve turns a raw query into an Outcome against the dataset held by state.
func Resolve(state State, raw string) domain.Outcome {
	ds, ok := state.Dataset()
	if !ok {
		logger.Warn("Query %q before data was loaded", raw)
		return domain.Outcome{Kind: domain.OutcomeDataNotLoaded}
	}

	q := catalog.Normalize(raw)
	if q == "" {
		logger.Debug("Empty query")
		return domain.Outcome{Kind: domain.OutcomeEmpty}
	}

	var recs []domain.ResultRecord
	if c, ok := Classify(q); ok {
		logger.Debug("Query %q matched category %s", q, c)
		recs = Extract(ds, c)
	} else {
		cities, err := catalog.CityFor(ds, q)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logger.Warn("Country lookup failed: %v", err)
			}
			logger.Debug("No match for %q", q)
			return domain.Outcome{Kind: domain.OutcomeNoMatch}
		}
		logger.Debug("Query %q matched a country", q)
		recs = cities
	}

	if len(recs) > MaxResults {
		logger.Debug("Truncating %d records to %d", len(recs), MaxResults)
		recs = recs[:MaxResults]
	}
	if len(recs) == 0 {
		return domain.Outcome{Kind: domain.OutcomeNoMatch}
	}
	return domain.Outcome{Kind: domain.OutcomeResults, Records: recs}
}
