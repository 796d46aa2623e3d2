package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/domain/listing/mocks"
)

type browserSuite struct {
	suite.Suite
	repo *mocks.Repo
	b    *Browser
	got  []Result
}

func TestBrowserSuite(t *testing.T) {
	suite.Run(t, new(browserSuite))
}

func (s *browserSuite) SetupTest() {
	goods := []*listing.Listing{
		mockListing("g1", 100, "Painting", 3600, 3),
		mockListing("g2", 200, "Sculpture", 7200, 8),
		mockListing("g3", 50, "Painting", 1800, 1),
	}
	spaces := []*listing.Listing{
		mockListing("s1", 500, "Gallery", 3600, 0),
		mockListing("s2", 80, "Outdoor", 5400, 0),
	}
	for _, l := range spaces {
		l.MarketType = listing.MarketTypeSpaces
	}

	s.repo = &mocks.Repo{}
	s.repo.On("Listings", mock.Anything, listing.MarketTypeGoods).Return(goods, nil)
	s.repo.On("Listings", mock.Anything, listing.MarketTypeSpaces).Return(spaces, nil)

	s.got = nil
	b, err := NewBrowser(mockCtx, NewCatalog(&CatalogUseCaseCfg{Repo: s.repo}), listing.MarketTypeGoods,
		WithSubscriber(func(r Result) { s.got = append(s.got, r) }),
	)
	s.Require().NoError(err)
	s.b = b
}

func (s *browserSuite) last() Result {
	s.Require().NotEmpty(s.got)
	return s.got[len(s.got)-1]
}

func (s *browserSuite) TestInitialResult() {
	s.Require().Len(s.got, 1)
	s.Equal([]string{"g3", "g1", "g2"}, ids(s.last().Listings))
	s.True(s.last().Bounds.Low.Equal(decimal.NewFromInt(50)))
	s.True(s.last().Bounds.High.Equal(decimal.NewFromInt(200)))
	s.Equal(s.last().Listings, s.b.Current().Listings)
}

func (s *browserSuite) TestSettersRequery() {
	s.Require().NoError(s.b.SetCategory(mockCtx, "Painting"))
	s.Equal([]string{"g3", "g1"}, ids(s.last().Listings))

	s.Require().NoError(s.b.SetSortKey(mockCtx, listing.SortKeyPriceDesc))
	s.Equal([]string{"g1", "g3"}, ids(s.last().Listings))

	s.Require().NoError(s.b.SetPriceRange(mockCtx, decimal.NewFromInt(60), decimal.NewFromInt(300)))
	s.Equal([]string{"g1"}, ids(s.last().Listings))

	s.Require().NoError(s.b.ResetPriceRange(mockCtx))
	s.Equal([]string{"g1", "g3"}, ids(s.last().Listings))

	s.Require().NoError(s.b.SetCategory(mockCtx, listing.CategoryAll))
	s.Require().NoError(s.b.SetSearchText(mockCtx, "TITLE G2"))
	s.Equal([]string{"g2"}, ids(s.last().Listings))

	s.Len(s.got, 7)
}

func (s *browserSuite) TestMarketChangeResetsCategoryAndRange() {
	s.Require().NoError(s.b.SetCategory(mockCtx, "Painting"))
	s.Require().NoError(s.b.SetPriceRange(mockCtx, decimal.NewFromInt(100), decimal.NewFromInt(200)))

	s.Require().NoError(s.b.SetMarketType(mockCtx, listing.MarketTypeSpaces))
	res := s.last()
	s.Nil(res.Spec.Category)
	s.True(res.Bounds.Low.Equal(decimal.NewFromInt(80)))
	s.True(res.Bounds.High.Equal(decimal.NewFromInt(500)))
	s.True(res.Spec.PriceRange.High.Equal(decimal.NewFromInt(500)))
	s.Equal([]string{"s1", "s2"}, ids(res.Listings))
}

func (s *browserSuite) TestInvalidChangesKeepState() {
	n := len(s.got)
	s.ErrorIs(s.b.SetCategory(mockCtx, "Gallery"), domain.ErrBadParamInput)
	s.ErrorIs(s.b.SetSortKey(mockCtx, "cheapest"), domain.ErrBadParamInput)
	s.ErrorIs(s.b.SetMarketType(mockCtx, "boats"), domain.ErrBadParamInput)
	s.Len(s.got, n, "no notification on rejected change")
	s.Equal(listing.MarketTypeGoods, s.b.Current().Spec.MarketType)
}

func (s *browserSuite) TestSubscribersOrderAndPanic() {
	order := []string{}
	s.b.Subscribe(func(Result) { order = append(order, "first") })
	s.b.Subscribe(func(Result) { panic("bad subscriber") })
	unsub := s.b.Subscribe(func(Result) { order = append(order, "third") })

	s.Require().NoError(s.b.SetSearchText(mockCtx, "g"))
	s.Equal([]string{"first", "third"}, order)

	unsub()
	s.Require().NoError(s.b.SetSearchText(mockCtx, ""))
	s.Equal([]string{"first", "third", "first"}, order)
}

func (s *browserSuite) TestDefaultRangeFromOneRead() {
	first := []*listing.Listing{mockListing("g1", 100, "Painting", 3600, 0)}
	grown := []*listing.Listing{
		mockListing("g1", 100, "Painting", 3600, 0),
		mockListing("g2", 900, "Painting", 1800, 0),
	}
	repo := &mocks.Repo{}
	repo.On("Listings", mock.Anything, listing.MarketTypeGoods).Return(first, nil).Once()
	repo.On("Listings", mock.Anything, listing.MarketTypeGoods).Return(grown, nil)

	b, err := NewBrowser(mockCtx, NewCatalog(&CatalogUseCaseCfg{Repo: repo}), listing.MarketTypeGoods)
	s.Require().NoError(err)
	repo.AssertNumberOfCalls(s.T(), "Listings", 1)
	s.Equal([]string{"g1"}, ids(b.Current().Listings))
	s.True(b.Current().Bounds.High.Equal(decimal.NewFromInt(100)))

	// the sale added after the first read shows up under the new default range
	s.Require().NoError(b.SetSearchText(mockCtx, ""))
	repo.AssertNumberOfCalls(s.T(), "Listings", 2)
	res := b.Current()
	s.Equal([]string{"g2", "g1"}, ids(res.Listings))
	s.True(res.Bounds.High.Equal(decimal.NewFromInt(900)))
	s.True(res.Spec.PriceRange.High.Equal(decimal.NewFromInt(900)))
}

func (s *browserSuite) TestRepoError() {
	repo := &mocks.Repo{}
	repo.On("Listings", mock.Anything, listing.MarketTypeGoods).Return(nil, errRepo)

	b, err := NewBrowser(mockCtx, NewCatalog(&CatalogUseCaseCfg{Repo: repo}), listing.MarketTypeGoods)
	s.Require().NoError(err)
	s.ErrorIs(b.Current().Err, errRepo)
	s.NotNil(b.Current().Listings)
	s.ErrorIs(b.SetSearchText(mockCtx, "x"), errRepo)
}

func (s *browserSuite) TestInvalidOptions() {
	_, err := NewBrowser(mockCtx, NewCatalog(&CatalogUseCaseCfg{Repo: s.repo}), listing.MarketTypeGoods,
		WithInitialSortKey("cheapest"))
	s.ErrorIs(err, domain.ErrBadParamInput)

	_, err = NewBrowser(mockCtx, NewCatalog(&CatalogUseCaseCfg{Repo: s.repo}), "boats")
	s.ErrorIs(err, domain.ErrBadParamInput)
}
