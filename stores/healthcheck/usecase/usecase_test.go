package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/artbay/goapi/base/ctx"
	hcdomain "github.com/artbay/goapi/domain/healthcheck"
	"github.com/artbay/goapi/domain/healthcheck/mocks"
	"github.com/artbay/goapi/domain/listing"
	listingMocks "github.com/artbay/goapi/domain/listing/mocks"
)

var mockCtx = ctx.Background()

type healthCheckSuite struct {
	suite.Suite
	repo    *mocks.HealthCheckRepo
	catalog *listingMocks.Repo
}

func TestHealthCheckSuite(t *testing.T) {
	suite.Run(t, new(healthCheckSuite))
}

func (s *healthCheckSuite) SetupTest() {
	s.repo = &mocks.HealthCheckRepo{}
	s.catalog = &listingMocks.Repo{}
}

func (s *healthCheckSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.catalog.AssertExpectations(s.T())
}

func (s *healthCheckSuite) TestHealthy() {
	s.repo.On("Ping", mockCtx).Return([]hcdomain.BackendStatus{{Name: hcdomain.BackendMongo, Ok: true}}).Once()
	s.catalog.On("Listings", mockCtx, listing.MarketTypeGoods).Return(make([]*listing.Listing, 3), nil).Once()
	s.catalog.On("Listings", mockCtx, listing.MarketTypeSpaces).Return(make([]*listing.Listing, 2), nil).Once()

	r := New(s.repo, s.catalog).Check(mockCtx)
	s.True(r.Healthy)
	s.Equal([]hcdomain.BackendStatus{
		{Name: hcdomain.BackendMongo, Ok: true},
		{Name: hcdomain.BackendCatalog, Ok: true},
	}, r.Backends)
	s.Equal(map[listing.MarketType]int{listing.MarketTypeGoods: 3, listing.MarketTypeSpaces: 2}, r.Listings)
}

func (s *healthCheckSuite) TestBackendDown() {
	s.repo.On("Ping", mockCtx).Return([]hcdomain.BackendStatus{{Name: hcdomain.BackendRedis, Err: "redis down"}}).Once()
	s.catalog.On("Listings", mockCtx, listing.MarketTypeGoods).Return([]*listing.Listing{}, nil).Once()
	s.catalog.On("Listings", mockCtx, listing.MarketTypeSpaces).Return([]*listing.Listing{}, nil).Once()

	r := New(s.repo, s.catalog).Check(mockCtx)
	s.False(r.Healthy)
}

func (s *healthCheckSuite) TestCatalogDown() {
	s.repo.On("Ping", mockCtx).Return([]hcdomain.BackendStatus{}).Once()
	s.catalog.On("Listings", mockCtx, listing.MarketTypeGoods).Return(nil, errors.New("catalog down")).Once()

	r := New(s.repo, s.catalog).Check(mockCtx)
	s.False(r.Healthy)
	s.Equal([]hcdomain.BackendStatus{{Name: hcdomain.BackendCatalog, Err: "catalog down"}}, r.Backends)
}
