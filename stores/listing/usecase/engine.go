package usecase

import (
	"sort"

	"github.com/artbay/goapi/domain/listing"
)

// Query filters listings by spec.Category, spec.SearchText and
// spec.PriceRange, then stable-sorts the survivors by spec.SortKey.
// The input slice is left untouched. A nil PriceRange means the bounds of
// listings, so callers resolving the default against the market collection
// must set it themselves.
func Query(listings []*listing.Listing, spec listing.QuerySpec) []*listing.Listing {
	bounds := listing.BoundsOf(listings)
	if spec.PriceRange != nil {
		bounds = *spec.PriceRange
	}

	res := []*listing.Listing{}
	if bounds.IsEmpty() {
		return res
	}

	search := listing.NewSearch(spec.SearchText)
	for _, l := range listings {
		if !l.InCategory(spec.Category) || !search.Match(l) || !l.InPriceRange(bounds) {
			continue
		}
		res = append(res, l)
	}

	sort.SliceStable(res, less(res, spec.SortKey))
	return res
}

func less(ls []*listing.Listing, key listing.SortKey) func(i, j int) bool {
	switch key {
	case listing.SortKeyPriceAsc:
		return func(i, j int) bool { return ls[i].BasePrice.LessThan(ls[j].BasePrice) }
	case listing.SortKeyPriceDesc:
		return func(i, j int) bool { return ls[i].BasePrice.GreaterThan(ls[j].BasePrice) }
	case listing.SortKeyPopularity:
		return func(i, j int) bool { return ls[i].Popularity > ls[j].Popularity }
	default:
		return func(i, j int) bool { return ls[i].Timestamp.After(ls[j].Timestamp) }
	}
}
