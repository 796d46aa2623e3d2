package listing

import (
	"github.com/shopspring/decimal"

	"github.com/artbay/goapi/base/ctx"
)

// Repo provides the listing collection of a market type
type Repo interface {
	Listings(c ctx.Ctx, m MarketType) ([]*Listing, error)
}

// Writer is implemented by repos that accept new listings
type Writer interface {
	Append(c ctx.Ctx, l *Listing) error
}

type RepoWriter interface {
	Repo
	Writer
}

// MarketSummary describes one market type's collection
type MarketSummary struct {
	MarketType MarketType `json:"marketType"`
	Count      int        `json:"count"`
	PriceRange PriceRange `json:"priceRange"`
	Categories []Category `json:"categories"`
}

// Snapshot is a search over one read of a market collection
type Snapshot struct {
	Listings []*Listing `json:"listings"`
	// Bounds of every listing in the collection read
	Bounds PriceRange `json:"bounds"`
	// Range the listings were filtered with, Bounds when the spec had none
	Range PriceRange `json:"range"`
}

type CatalogUsecase interface {
	Search(c ctx.Ctx, spec QuerySpec) ([]*Listing, error)
	// Browse runs spec like Search and also reports the collection bounds,
	// both taken from the same read.
	Browse(c ctx.Ctx, spec QuerySpec) (Snapshot, error)
	PriceBounds(c ctx.Ctx, m MarketType) (PriceRange, error)
	Categories(c ctx.Ctx, m MarketType) ([]Category, error)
	FindOne(c ctx.Ctx, id string) (*Listing, error)
	Markets(c ctx.Ctx) ([]MarketSummary, error)
}

// SubmitRequest is the sell form payload
type SubmitRequest struct {
	MarketType     MarketType       `json:"marketType" validate:"required,oneof=goods spaces"`
	Title          string           `json:"title" validate:"required,notblank,max=120"`
	Description    string           `json:"description" validate:"max=2000"`
	Category       string           `json:"category" validate:"required"`
	Artist         string           `json:"artist" validate:"max=120"`
	BasePrice      decimal.Decimal  `json:"basePrice" validate:"gt=0"`
	PriceIncrement *decimal.Decimal `json:"priceIncrement,omitempty"`
	// FixedPrice sells goods at basePrice without bidding. Spaces are always
	// fixed price.
	FixedPrice     bool             `json:"fixedPrice,omitempty"`
	RentalUnit     RentalUnit       `json:"rentalUnit,omitempty"`
	ImageReference *string          `json:"imageReference,omitempty"`
}

type SellUsecase interface {
	Submit(c ctx.Ctx, req SubmitRequest) (*Listing, error)
}
