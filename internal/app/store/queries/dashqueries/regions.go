// internal/app/store/queries/dashqueries/regions.go
package dashqueries

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/domain/models"
)

// maxRegionBuckets is how many regions the distribution keeps.
const maxRegionBuckets = 4

// RegionalDistribution counts a country/region/location field across the
// collection and returns the top buckets by share. Percentages are rounded
// half away from zero, so they may sum to slightly under 100. Order among
// equal percentages is unspecified.
func RegionalDistribution(ctx context.Context, store docstore.Store, collection string) ([]models.Region, error) {
	rows, err := store.ListAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	for _, rec := range rows {
		key := rec.StringOr("Unknown", "country", "region", "location")
		counts[key]++
	}

	total := len(rows)
	buckets := make([]models.Region, 0, len(counts))
	for key, n := range counts {
		buckets = append(buckets, models.Region{
			Country:    countryName(key),
			Code:       countryCode(key),
			Percentage: int(math.Round(float64(n) / float64(total) * 100)),
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Percentage > buckets[j].Percentage
	})
	if len(buckets) > maxRegionBuckets {
		buckets = buckets[:maxRegionBuckets]
	}
	return buckets, nil
}

var codeToCountry = map[string]string{
	"US": "United States",
	"UK": "United Kingdom",
	"CA": "Canada",
	"AU": "Australia",
	"DE": "Germany",
	"FR": "France",
	"JP": "Japan",
	"IN": "India",
}

var countryToCode = map[string]string{
	"United States":  "US",
	"United Kingdom": "UK",
	"Canada":         "CA",
	"Australia":      "AU",
	"Germany":        "DE",
	"France":         "FR",
	"Japan":          "JP",
	"India":          "IN",
}

// countryName resolves a raw bucket key to a display name. Unknown keys pass
// through unchanged.
func countryName(key string) string {
	if name, ok := codeToCountry[strings.ToUpper(key)]; ok {
		return name
	}
	return key
}

// countryCode resolves a raw bucket key to a 2-letter code, defaulting to
// the key's first two characters uppercased.
func countryCode(key string) string {
	if code, ok := countryToCode[key]; ok {
		return code
	}
	runes := []rune(key)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
