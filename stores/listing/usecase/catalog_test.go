package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/domain/listing/mocks"
)

var (
	mockCtx = ctx.Background()
	errRepo = errors.New("repo down")
)

type catalogSuite struct {
	suite.Suite
	repo   *mocks.Repo
	goods  []*listing.Listing
	spaces []*listing.Listing
	im     listing.CatalogUsecase
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) SetupTest() {
	s.repo = &mocks.Repo{}
	s.goods = []*listing.Listing{
		mockListing("g1", 100, "Painting", 3600, 0),
		mockListing("g2", 200, "Sculpture", 7200, 0),
		mockListing("g3", 50, "Digital", 1800, 0),
	}
	space := mockListing("s1", 500, "Gallery", 3600, 0)
	space.MarketType = listing.MarketTypeSpaces
	s.spaces = []*listing.Listing{space}
	s.im = NewCatalog(&CatalogUseCaseCfg{Repo: s.repo})
}

func (s *catalogSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *catalogSuite) TestSearch() {
	s.repo.On("Listings", mockCtx, listing.MarketTypeGoods).Return(s.goods, nil).Once()

	spec, err := listing.NewQuerySpec(listing.MarketTypeGoods, listing.WithSortKey(listing.SortKeyPriceAsc))
	s.Require().NoError(err)
	res, err := s.im.Search(mockCtx, spec)
	s.Require().NoError(err)
	s.Equal([]string{"g3", "g1", "g2"}, ids(res))
}

func (s *catalogSuite) TestSearchError() {
	s.repo.On("Listings", mockCtx, listing.MarketTypeGoods).Return(nil, errRepo).Once()

	res, err := s.im.Search(mockCtx, listing.QuerySpec{MarketType: listing.MarketTypeGoods})
	s.ErrorIs(err, errRepo)
	s.Nil(res)
}

func (s *catalogSuite) TestPriceBounds() {
	s.repo.On("Listings", mockCtx, listing.MarketTypeGoods).Return(s.goods, nil).Once()
	s.repo.On("Listings", mockCtx, listing.MarketTypeSpaces).Return([]*listing.Listing{}, nil).Once()

	r, err := s.im.PriceBounds(mockCtx, listing.MarketTypeGoods)
	s.Require().NoError(err)
	s.True(r.Low.Equal(decimal.NewFromInt(50)))
	s.True(r.High.Equal(decimal.NewFromInt(200)))

	r, err = s.im.PriceBounds(mockCtx, listing.MarketTypeSpaces)
	s.Require().NoError(err)
	s.True(r.Low.IsZero())
	s.True(r.High.IsZero())
}

func (s *catalogSuite) TestCategories() {
	cs, err := s.im.Categories(mockCtx, listing.MarketTypeSpaces)
	s.Require().NoError(err)
	s.Equal("Gallery", cs[0].Name)

	_, err = s.im.Categories(mockCtx, "boats")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *catalogSuite) TestFindOne() {
	s.repo.On("Listings", mockCtx, listing.MarketTypeGoods).Return(s.goods, nil)
	s.repo.On("Listings", mockCtx, listing.MarketTypeSpaces).Return(s.spaces, nil)

	l, err := s.im.FindOne(mockCtx, "s1")
	s.Require().NoError(err)
	s.Equal(s.spaces[0], l)

	l, err = s.im.FindOne(mockCtx, "g2")
	s.Require().NoError(err)
	s.Equal(s.goods[1], l)

	_, err = s.im.FindOne(mockCtx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *catalogSuite) TestMarkets() {
	s.repo.On("Listings", mock.Anything, listing.MarketTypeGoods).Return(s.goods, nil).Once()
	s.repo.On("Listings", mock.Anything, listing.MarketTypeSpaces).Return(s.spaces, nil).Once()

	res, err := s.im.Markets(mockCtx)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(listing.MarketTypeGoods, res[0].MarketType)
	s.Equal(3, res[0].Count)
	s.True(res[0].PriceRange.High.Equal(decimal.NewFromInt(200)))
	s.Len(res[0].Categories, 5)
	s.Equal(listing.MarketTypeSpaces, res[1].MarketType)
	s.Equal(1, res[1].Count)
	s.True(res[1].PriceRange.Low.Equal(decimal.NewFromInt(500)))
}

func (s *catalogSuite) TestMarketsError() {
	s.repo.On("Listings", mock.Anything, listing.MarketTypeGoods).Return(s.goods, nil).Once()
	s.repo.On("Listings", mock.Anything, listing.MarketTypeSpaces).Return(nil, errRepo).Once()

	_, err := s.im.Markets(mockCtx)
	s.ErrorIs(err, errRepo)
}

func (s *catalogSuite) TestBrowse() {
	s.repo.On("Listings", mockCtx, listing.MarketTypeGoods).Return(s.goods, nil).Twice()

	spec, err := listing.NewQuerySpec(listing.MarketTypeGoods)
	s.Require().NoError(err)
	snap, err := s.im.Browse(mockCtx, spec)
	s.Require().NoError(err)
	s.Equal([]string{"g3", "g1", "g2"}, ids(snap.Listings))
	s.Equal(snap.Bounds, snap.Range)
	s.True(snap.Bounds.Low.Equal(decimal.NewFromInt(50)))
	s.True(snap.Bounds.High.Equal(decimal.NewFromInt(200)))
	s.Nil(spec.PriceRange, "caller spec untouched")

	spec, err = listing.NewQuerySpec(listing.MarketTypeGoods, listing.WithPriceRange(decimal.NewFromInt(90), decimal.NewFromInt(150)))
	s.Require().NoError(err)
	snap, err = s.im.Browse(mockCtx, spec)
	s.Require().NoError(err)
	s.Equal([]string{"g1"}, ids(snap.Listings))
	s.True(snap.Bounds.High.Equal(decimal.NewFromInt(200)))
	s.True(snap.Range.High.Equal(decimal.NewFromInt(150)))
}

func (s *catalogSuite) TestBrowseRepoError() {
	s.repo.On("Listings", mockCtx, listing.MarketTypeSpaces).Return(nil, errRepo).Once()

	spec, err := listing.NewQuerySpec(listing.MarketTypeSpaces)
	s.Require().NoError(err)
	_, err = s.im.Browse(mockCtx, spec)
	s.ErrorIs(err, errRepo)
}
