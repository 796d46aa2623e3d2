package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/database/mongoclient"
	"github.com/artbay/goapi/base/log"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/service/query"
)

// listingDoc is a Listing as stored in the listings table
type listingDoc struct {
	Id             string               `bson:"_id"`
	MarketType     listing.MarketType   `bson:"marketType"`
	Title          string               `bson:"title"`
	Description    string               `bson:"description"`
	Category       string               `bson:"category"`
	BasePrice      primitive.Decimal128 `bson:"basePrice"`
	PriceIncrement primitive.Decimal128 `bson:"priceIncrement"`
	CurrentPrice   primitive.Decimal128 `bson:"currentPrice"`
	Artist         string               `bson:"artist"`
	Popularity     int                  `bson:"popularity"`
	IsAuction      bool                 `bson:"isAuction"`
	Timestamp      time.Time            `bson:"timestamp"`
	ImageReference *string              `bson:"imageReference,omitempty"`
	RentalUnit     listing.RentalUnit   `bson:"rentalUnit,omitempty"`
	Images         []string             `bson:"images,omitempty"`
}

type selector struct {
	MarketType *listing.MarketType `bson:"marketType"`
}

func toDecimal(d primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func (d *listingDoc) toListing() (*listing.Listing, error) {
	base, err := toDecimal(d.BasePrice)
	if err != nil {
		return nil, err
	}
	inc, err := toDecimal(d.PriceIncrement)
	if err != nil {
		return nil, err
	}
	cur, err := toDecimal(d.CurrentPrice)
	if err != nil {
		return nil, err
	}
	return listing.New(listing.Listing{
		Id:             d.Id,
		MarketType:     d.MarketType,
		Title:          d.Title,
		Description:    d.Description,
		Category:       d.Category,
		BasePrice:      base,
		PriceIncrement: inc,
		CurrentPrice:   cur,
		Artist:         d.Artist,
		Popularity:     d.Popularity,
		IsAuction:      d.IsAuction,
		Timestamp:      d.Timestamp,
		ImageReference: d.ImageReference,
		RentalUnit:     d.RentalUnit,
		Images:         d.Images,
	})
}

func toDoc(l *listing.Listing) (*listingDoc, error) {
	base, err := toDecimal128(l.BasePrice)
	if err != nil {
		return nil, err
	}
	inc, err := toDecimal128(l.PriceIncrement)
	if err != nil {
		return nil, err
	}
	cur, err := toDecimal128(l.CurrentPrice)
	if err != nil {
		return nil, err
	}
	return &listingDoc{
		Id:             l.Id,
		MarketType:     l.MarketType,
		Title:          l.Title,
		Description:    l.Description,
		Category:       l.Category,
		BasePrice:      base,
		PriceIncrement: inc,
		CurrentPrice:   cur,
		Artist:         l.Artist,
		Popularity:     l.Popularity,
		IsAuction:      l.IsAuction,
		Timestamp:      l.Timestamp,
		ImageReference: l.ImageReference,
		RentalUnit:     l.RentalUnit,
		Images:         l.Images,
	}, nil
}

type mongoRepo struct {
	q query.Mongo
}

// NewMongo reads listings from the listings table. It does not accept writes.
func NewMongo(q query.Mongo) listing.Repo {
	return &mongoRepo{q}
}

func (im *mongoRepo) Listings(c ctx.Ctx, m listing.MarketType) ([]*listing.Listing, error) {
	if !m.IsValid() {
		return nil, xerrors.Errorf("market type %q: %w", m, domain.ErrBadParamInput)
	}

	qry, err := mongoclient.MakeBsonM(selector{MarketType: &m})
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	docs := []listingDoc{}
	// natural order, the engine keeps it for ties
	if err := im.q.Search(c, domain.TableListings, 0, 0, "", qry, &docs); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	res := make([]*listing.Listing, 0, len(docs))
	for i := range docs {
		l, err := docs[i].toListing()
		if err != nil {
			c.WithFields(log.Fields{"id": docs[i].Id, "err": err}).Warn("skip invalid listing document")
			continue
		}
		res = append(res, l)
	}
	return res, nil
}

// SeedMongo loads listings into an empty listings table. With reset the
// table is emptied first.
func SeedMongo(c ctx.Ctx, q query.Mongo, listings []*listing.Listing, reset bool) error {
	if reset {
		n, err := q.RemoveAll(c, domain.TableListings, bson.M{})
		if err != nil {
			c.WithField("err", err).Error("q.RemoveAll failed")
			return err
		}
		c.WithField("removed", n).Info("listings table reset")
	}

	count, err := q.Count(c, domain.TableListings, bson.M{})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return err
	}
	if count > 0 {
		c.WithField("count", count).Info("listings table not empty, skip seeding")
		return nil
	}

	for _, l := range listings {
		doc, err := toDoc(l)
		if err != nil {
			c.WithFields(log.Fields{"id": l.Id, "err": err}).Error("toDoc failed")
			return err
		}
		if err := q.Insert(c, domain.TableListings, doc); err != nil && err != query.ErrDuplicateKey {
			c.WithFields(log.Fields{"id": l.Id, "err": err}).Error("q.Insert failed")
			return err
		}
	}
	c.WithField("count", len(listings)).Info("listings table seeded")
	return nil
}
