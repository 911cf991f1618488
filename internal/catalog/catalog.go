// package catalog implements client-side narrowing of external catalog
// (Discogs) search results: facet extraction and AND-composed filtering
// over an already-fetched result set. No filter ever triggers a re-fetch.
package catalog

import (
	"sort"
	"strings"

	"github.com/desertthunder/slowdive/internal/models"
)

// CommonFormats are the fixed format choices offered before any results exist.
var CommonFormats = []string{"Vinyl", "CD", "Cassette", "Digital", "Box Set", "DVD"}

// Filter describes the active narrowing criteria. Zero values mean "no
// constraint" for that facet; criteria compose with logical AND.
type Filter struct {
	Formats []string // case-insensitive substring match against any result format
	Year    string   // exact match
	Country string   // exact match
	Label   string   // exact membership in the result's label list
}

// Active reports whether any criterion is set.
func (f Filter) Active() bool {
	return len(f.Formats) > 0 || f.Year != "" || f.Country != "" || f.Label != ""
}

// Matches reports whether a single result passes every active criterion.
func (f Filter) Matches(result models.CatalogResult) bool {
	if len(f.Formats) > 0 {
		matched := false
		for _, have := range result.Formats {
			for _, want := range f.Formats {
				if strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.Year != "" && result.Year != f.Year {
		return false
	}

	if f.Country != "" && result.Country != f.Country {
		return false
	}

	if f.Label != "" {
		found := false
		for _, label := range result.Labels {
			if label == f.Label {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Apply returns the results that pass the filter, preserving input order.
func (f Filter) Apply(results []models.CatalogResult) []models.CatalogResult {
	if !f.Active() {
		return results
	}

	filtered := make([]models.CatalogResult, 0, len(results))
	for _, result := range results {
		if f.Matches(result) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// ToggleFormat adds the format to the multi-select, or removes it if present.
func (f Filter) ToggleFormat(format string) Filter {
	for i, have := range f.Formats {
		if have == format {
			f.Formats = append(append([]string{}, f.Formats[:i]...), f.Formats[i+1:]...)
			return f
		}
	}
	f.Formats = append(append([]string{}, f.Formats...), format)
	return f
}

// Facets are the distinct filter option values derived from a result set.
type Facets struct {
	Years     []string // descending
	Countries []string // ascending
	Labels    []string // ascending
}

// ExtractFacets collects distinct years, countries and labels from results.
func ExtractFacets(results []models.CatalogResult) Facets {
	years := make(map[string]struct{})
	countries := make(map[string]struct{})
	labels := make(map[string]struct{})

	for _, result := range results {
		if result.Year != "" {
			years[result.Year] = struct{}{}
		}
		if result.Country != "" {
			countries[result.Country] = struct{}{}
		}
		for _, label := range result.Labels {
			if label != "" {
				labels[label] = struct{}{}
			}
		}
	}

	facets := Facets{
		Years:     keys(years),
		Countries: keys(countries),
		Labels:    keys(labels),
	}

	// Newest releases first for years, everything else alphabetical
	sort.Sort(sort.Reverse(sort.StringSlice(facets.Years)))
	sort.Strings(facets.Countries)
	sort.Strings(facets.Labels)

	return facets
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

// SplitTitle derives artist and title from a catalog result's combined
// "Artist - Title" string. Results without a separator keep the whole string
// as the title and fall back to "Unknown Artist".
func SplitTitle(combined string) (artist, title string) {
	if idx := strings.Index(combined, " - "); idx >= 0 {
		return combined[:idx], combined[idx+3:]
	}
	return "Unknown Artist", combined
}
