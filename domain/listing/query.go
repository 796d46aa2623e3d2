package listing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/domain"
)

type SortKey string

const (
	SortKeyNewest     SortKey = "newest"
	SortKeyPriceAsc   SortKey = "price_asc"
	SortKeyPriceDesc  SortKey = "price_desc"
	SortKeyPopularity SortKey = "popularity"
)

var SortKeys = []SortKey{SortKeyNewest, SortKeyPriceAsc, SortKeyPriceDesc, SortKeyPopularity}

// ParseSortKey maps text to a SortKey, "" being SortKeyNewest
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortKeyNewest, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", xerrors.Errorf("sort key %q: %w", s, domain.ErrBadParamInput)
}

// PriceRange is an inclusive basePrice interval
type PriceRange struct {
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

// IsEmpty is true when Low > High, which matches nothing
func (r PriceRange) IsEmpty() bool {
	return r.Low.GreaterThan(r.High)
}

// BoundsOf returns [min, max] basePrice of listings, [0, 0] when empty
func BoundsOf(listings []*Listing) PriceRange {
	if len(listings) == 0 {
		return PriceRange{Low: decimal.Zero, High: decimal.Zero}
	}
	r := PriceRange{Low: listings[0].BasePrice, High: listings[0].BasePrice}
	for _, l := range listings[1:] {
		if l.BasePrice.LessThan(r.Low) {
			r.Low = l.BasePrice
		}
		if l.BasePrice.GreaterThan(r.High) {
			r.High = l.BasePrice
		}
	}
	return r
}

// QuerySpec is the combined filter and sort parameters of one catalog query.
// A nil PriceRange means the bounds of the whole market collection.
type QuerySpec struct {
	MarketType MarketType
	Category   *string
	SearchText string
	PriceRange *PriceRange
	SortKey    SortKey
}

type QueryOptionsFunc func(*QuerySpec) error

// NewQuerySpec builds a spec for m with the given options applied in order
func NewQuerySpec(m MarketType, opts ...QueryOptionsFunc) (QuerySpec, error) {
	spec := QuerySpec{MarketType: m, SortKey: SortKeyNewest}
	if !m.IsValid() {
		return spec, xerrors.Errorf("market type %q: %w", m, domain.ErrBadParamInput)
	}
	for _, opt := range opts {
		if err := opt(&spec); err != nil {
			return spec, err
		}
	}
	return spec, nil
}

func WithCategory(category string) QueryOptionsFunc {
	return func(s *QuerySpec) error {
		if category != CategoryAll && category != "" && !IsValidCategory(s.MarketType, category) {
			return xerrors.Errorf("category %q: %w", category, domain.ErrBadParamInput)
		}
		s.Category = &category
		return nil
	}
}

func WithSearchText(text string) QueryOptionsFunc {
	return func(s *QuerySpec) error {
		s.SearchText = text
		return nil
	}
}

func WithPriceRange(low, high decimal.Decimal) QueryOptionsFunc {
	return func(s *QuerySpec) error {
		s.PriceRange = &PriceRange{Low: low, High: high}
		return nil
	}
}

func WithSortKey(key SortKey) QueryOptionsFunc {
	return func(s *QuerySpec) error {
		if _, err := ParseSortKey(string(key)); err != nil {
			return err
		}
		if key == "" {
			key = SortKeyNewest
		}
		s.SortKey = key
		return nil
	}
}

// Search is a folded search needle. The zero value matches everything.
type Search struct {
	needle string
}

// NewSearch folds text for case-insensitive matching. Blank text yields a
// Search that matches everything; otherwise text is used as given.
func NewSearch(text string) Search {
	if strings.TrimSpace(text) == "" {
		return Search{}
	}
	return Search{needle: cases.Fold().String(text)}
}

func (s Search) IsBlank() bool {
	return s.needle == ""
}

// Match reports whether title or description contains the needle
func (s Search) Match(l *Listing) bool {
	if s.needle == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(l.Title), s.needle) ||
		strings.Contains(fold.String(l.Description), s.needle)
}
