package repository

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/service/query"
	"github.com/artbay/goapi/service/query/mocks"
)

type mongoSuite struct {
	suite.Suite
	q  *mocks.Mongo
	im listing.Repo
}

func TestMongoSuite(t *testing.T) {
	suite.Run(t, new(mongoSuite))
}

func (s *mongoSuite) SetupTest() {
	s.q = &mocks.Mongo{}
	s.im = NewMongo(s.q)
}

func (s *mongoSuite) TearDownTest() {
	s.q.AssertExpectations(s.T())
}

func dec128(v string) primitive.Decimal128 {
	d, _ := primitive.ParseDecimal128(v)
	return d
}

func (s *mongoSuite) TestListings() {
	docs := []listingDoc{
		{
			Id: "a", MarketType: listing.MarketTypeGoods, Title: "Dream Collage", Category: "Digital",
			BasePrice: dec128("95"), PriceIncrement: dec128("9.5"), CurrentPrice: dec128("114.5"),
			IsAuction: true, Timestamp: now,
		},
		{
			// current below base, skipped
			Id: "b", MarketType: listing.MarketTypeGoods, Title: "Broken", Category: "Digital",
			BasePrice: dec128("95"), PriceIncrement: dec128("0"), CurrentPrice: dec128("1"),
		},
	}
	m := listing.MarketTypeGoods
	s.q.On("Search", mockCtx, domain.TableListings, 0, 0, "", bson.M{"marketType": m}, mock.AnythingOfType("*[]repository.listingDoc")).
		Run(func(args mock.Arguments) {
			*args.Get(6).(*[]listingDoc) = docs
		}).
		Return(nil).Once()

	res, err := s.im.Listings(mockCtx, m)
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal("a", res[0].Id)
	s.True(res[0].OfferPrice().Equal(decimal.RequireFromString("114.5")))
	s.True(res[0].BidIncrement().Equal(decimal.RequireFromString("9.5")))
}

func (s *mongoSuite) TestListingsError() {
	errMongo := errors.New("mongo down")
	s.q.On("Search", mockCtx, domain.TableListings, 0, 0, "", mock.Anything, mock.Anything).Return(errMongo).Once()

	_, err := s.im.Listings(mockCtx, listing.MarketTypeSpaces)
	s.ErrorIs(err, errMongo)

	_, err = s.im.Listings(mockCtx, "boats")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *mongoSuite) TestDocRoundTrip() {
	ls, err := FixtureListings(now)
	s.Require().NoError(err)
	for _, l := range ls {
		doc, err := toDoc(l)
		s.Require().NoError(err)
		back, err := doc.toListing()
		s.Require().NoError(err)
		s.True(l.CurrentPrice.Equal(back.CurrentPrice), l.Id)
		s.Equal(l.Title, back.Title)
	}
}

func (s *mongoSuite) TestSeed() {
	ls, err := FixtureListings(now)
	s.Require().NoError(err)

	s.q.On("RemoveAll", mockCtx, domain.TableListings, bson.M{}).Return(int64(3), nil).Once()
	s.q.On("Count", mockCtx, domain.TableListings, bson.M{}).Return(0, nil).Once()
	s.q.On("Insert", mockCtx, domain.TableListings, mock.AnythingOfType("*repository.listingDoc")).Return(nil).Times(len(ls))
	s.Require().NoError(SeedMongo(mockCtx, s.q, ls, true))
}

func (s *mongoSuite) TestSeedSkipsFilledTable() {
	s.q.On("Count", mockCtx, domain.TableListings, bson.M{}).Return(40, nil).Once()
	s.Require().NoError(SeedMongo(mockCtx, s.q, nil, false))
}

func (s *mongoSuite) TestSeedIgnoresDuplicates() {
	ls, err := FixtureListings(now)
	s.Require().NoError(err)

	s.q.On("Count", mockCtx, domain.TableListings, bson.M{}).Return(0, nil).Once()
	s.q.On("Insert", mockCtx, domain.TableListings, mock.Anything).Return(query.ErrDuplicateKey).Times(len(ls))
	s.Require().NoError(SeedMongo(mockCtx, s.q, ls, false))
}
