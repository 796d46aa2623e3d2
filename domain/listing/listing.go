package listing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/domain"
)

// MarketType partitions the catalog into artworks and rentable venues
type MarketType string

const (
	MarketTypeGoods  MarketType = "goods"
	MarketTypeSpaces MarketType = "spaces"
)

// MarketTypes lists every market type in display order
var MarketTypes = []MarketType{MarketTypeGoods, MarketTypeSpaces}

// ParseMarketType accepts the canonical names plus the picker aliases
// ("art", "0" for goods and "space", "1" for spaces).
func ParseMarketType(s string) (MarketType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "goods", "art", "0":
		return MarketTypeGoods, nil
	case "spaces", "space", "1":
		return MarketTypeSpaces, nil
	}
	return "", xerrors.Errorf("market type %q: %w", s, domain.ErrBadParamInput)
}

func (m MarketType) IsValid() bool {
	return m == MarketTypeGoods || m == MarketTypeSpaces
}

// RentalUnit is the billing period of a space
type RentalUnit string

const (
	RentalUnitHour  RentalUnit = "Hour"
	RentalUnitDay   RentalUnit = "Day"
	RentalUnitWeek  RentalUnit = "Week"
	RentalUnitMonth RentalUnit = "Month"
)

var RentalUnits = []RentalUnit{RentalUnitHour, RentalUnitDay, RentalUnitWeek, RentalUnitMonth}

func (u RentalUnit) IsValid() bool {
	for _, r := range RentalUnits {
		if u == r {
			return true
		}
	}
	return false
}

// Listing is an artwork or a space offered in the catalog
type Listing struct {
	Id             string          `json:"id"`
	MarketType     MarketType      `json:"marketType"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	PriceIncrement decimal.Decimal `json:"priceIncrement"`
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	Artist         string          `json:"artist"`
	Popularity     int             `json:"popularity"`
	IsAuction      bool            `json:"isAuction"`
	Timestamp      time.Time       `json:"timestamp"`
	ImageReference *string         `json:"imageReference,omitempty"`
	RentalUnit     RentalUnit      `json:"rentalUnit,omitempty"`
	Images         []string        `json:"images,omitempty"`
}

// New builds a Listing and checks it with Validate
func New(l Listing) (*Listing, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the listing invariants. Errors wrap domain.ErrBadParamInput.
func (l *Listing) Validate() error {
	switch {
	case l.Id == "":
		return badField("id", "empty")
	case !l.MarketType.IsValid():
		return badField("marketType", string(l.MarketType))
	case !IsValidCategory(l.MarketType, l.Category):
		return badField("category", l.Category)
	case l.BasePrice.IsNegative():
		return badField("basePrice", l.BasePrice.String())
	case l.PriceIncrement.IsNegative():
		return badField("priceIncrement", l.PriceIncrement.String())
	case l.CurrentPrice.LessThan(l.BasePrice):
		return badField("currentPrice", l.CurrentPrice.String())
	case l.Popularity < 0:
		return badField("popularity", "negative")
	case l.MarketType == MarketTypeGoods && l.RentalUnit != "":
		return badField("rentalUnit", "goods are not rented")
	case l.MarketType == MarketTypeSpaces && l.RentalUnit != "" && !l.RentalUnit.IsValid():
		return badField("rentalUnit", string(l.RentalUnit))
	}
	return nil
}

func badField(field, detail string) error {
	return xerrors.Errorf("%s %s: %w", field, detail, domain.ErrBadParamInput)
}

// OfferPrice is the amount an "Offer now" action proposes: the current price
func (l *Listing) OfferPrice() decimal.Decimal {
	return l.CurrentPrice
}

// BidIncrement is what every bid adds to an auction, zero for fixed price
func (l *Listing) BidIncrement() decimal.Decimal {
	if !l.IsAuction {
		return decimal.Zero
	}
	return l.PriceIncrement
}

// InCategory reports whether the listing passes the category filter.
// nil, empty and CategoryAll match everything.
func (l *Listing) InCategory(category *string) bool {
	if category == nil || *category == "" || *category == CategoryAll {
		return true
	}
	return l.Category == *category
}

// InPriceRange reports low <= basePrice <= high
func (l *Listing) InPriceRange(r PriceRange) bool {
	return !l.BasePrice.LessThan(r.Low) && !l.BasePrice.GreaterThan(r.High)
}

// Clone returns a copy that shares no mutable state with l
func (l *Listing) Clone() *Listing {
	res := *l
	if l.ImageReference != nil {
		ref := *l.ImageReference
		res.ImageReference = &ref
	}
	if l.Images != nil {
		res.Images = append([]string{}, l.Images...)
	}
	return &res
}
