package services

import (
	"strings"

	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
	catalogsvcs "github.com/ghuser/budgeteer/services/catalog/domain/services"
)

// MatchName returns the records named exactly name, ignoring case. When there
// are none it falls back to records whose name contains name or is contained
// in it.
func MatchName(name string, records []catalogmodels.PriceRecord) []catalogmodels.PriceRecord {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	var exact, partial []catalogmodels.PriceRecord
	for _, r := range records {
		hay := strings.ToLower(r.ItemName)
		switch {
		case hay == needle:
			exact = append(exact, r)
		case strings.Contains(hay, needle) || strings.Contains(needle, hay):
			partial = append(partial, r)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return partial
}

// LookupItems maps assistant-supplied names onto catalog records. Each name's
// matches are resolved to one record per (item name, store), nearest to
// today. A record already returned for an earlier name is not repeated.
func LookupItems(names []string, records []catalogmodels.PriceRecord, today catalogmodels.Date) []catalogmodels.PriceRecord {
	seen := make(map[catalogsvcs.NameStoreKey]struct{})
	out := make([]catalogmodels.PriceRecord, 0)
	for _, name := range names {
		resolved := catalogsvcs.LatestPricesBy(MatchName(name, records), today, catalogsvcs.ByNameAndStore)
		for _, r := range resolved {
			k := catalogsvcs.ByNameAndStore(r)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
