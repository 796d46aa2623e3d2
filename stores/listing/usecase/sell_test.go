package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/artbay/goapi/base/ptr"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/domain/listing/mocks"
)

type writableRepo struct {
	*mocks.Repo
	*mocks.Writer
}

type sellSuite struct {
	suite.Suite
	writer *mocks.Writer
	im     listing.SellUsecase
	now    time.Time
	dir    string
}

func TestSellSuite(t *testing.T) {
	suite.Run(t, new(sellSuite))
}

func (s *sellSuite) SetupTest() {
	s.writer = &mocks.Writer{}
	s.now = time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	s.im = NewSell(&SellUseCaseCfg{
		Repo: writableRepo{Repo: &mocks.Repo{}, Writer: s.writer},
		Now:  func() time.Time { return s.now },
	})
	s.dir = s.T().TempDir()
}

func (s *sellSuite) TearDownTest() {
	s.writer.AssertExpectations(s.T())
}

func (s *sellSuite) goodsReq() listing.SubmitRequest {
	return listing.SubmitRequest{
		MarketType:     listing.MarketTypeGoods,
		Title:          " Sunset Dream ",
		Description:    "A beautiful landscape painting.",
		Category:       "Painting",
		Artist:         "Alice Lee",
		BasePrice:      decimal.NewFromInt(100),
		PriceIncrement: ptr.Decimal(decimal.NewFromInt(10)),
	}
}

func (s *sellSuite) TestSubmitGoods() {
	s.writer.On("Append", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(nil).Once()

	l, err := s.im.Submit(mockCtx, s.goodsReq())
	s.Require().NoError(err)
	s.NotEmpty(l.Id)
	s.Equal("Sunset Dream", l.Title)
	s.Equal(s.now, l.Timestamp)
	s.True(l.IsAuction)
	s.Equal(0, l.Popularity)
	s.True(l.CurrentPrice.Equal(l.BasePrice))
	s.True(l.OfferPrice().Equal(decimal.NewFromInt(100)))
	s.True(l.BidIncrement().Equal(decimal.NewFromInt(10)))
	s.Empty(l.RentalUnit)
}

func (s *sellSuite) TestSubmitFixedPriceGoods() {
	s.writer.On("Append", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(nil).Once()

	req := s.goodsReq()
	req.FixedPrice = true
	req.PriceIncrement = nil
	l, err := s.im.Submit(mockCtx, req)
	s.Require().NoError(err)
	s.False(l.IsAuction)
	s.True(l.BidIncrement().IsZero())
	s.True(l.OfferPrice().Equal(decimal.NewFromInt(100)))
}

func (s *sellSuite) TestSubmitSpace() {
	s.writer.On("Append", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(nil).Once()

	l, err := s.im.Submit(mockCtx, listing.SubmitRequest{
		MarketType: listing.MarketTypeSpaces,
		Title:      "Riverside Park",
		Category:   "Outdoor",
		BasePrice:  decimal.NewFromInt(80),
		RentalUnit: listing.RentalUnitDay,
	})
	s.Require().NoError(err)
	s.False(l.IsAuction)
	s.Equal(listing.RentalUnitDay, l.RentalUnit)
	s.True(l.PriceIncrement.IsZero())
}

func (s *sellSuite) TestSubmitIdsAreUnique() {
	s.writer.On("Append", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(nil).Twice()

	a, err := s.im.Submit(mockCtx, s.goodsReq())
	s.Require().NoError(err)
	b, err := s.im.Submit(mockCtx, s.goodsReq())
	s.Require().NoError(err)
	s.NotEqual(a.Id, b.Id)
}

func (s *sellSuite) TestSubmitInvalid() {
	tests := []struct {
		desc   string
		modify func(r *listing.SubmitRequest)
	}{
		{"blank title", func(r *listing.SubmitRequest) { r.Title = "   " }},
		{"long title", func(r *listing.SubmitRequest) { r.Title = strings.Repeat("a", 121) }},
		{"unknown market", func(r *listing.SubmitRequest) { r.MarketType = "boats" }},
		{"category of spaces", func(r *listing.SubmitRequest) { r.Category = "Gallery" }},
		{"zero price", func(r *listing.SubmitRequest) { r.BasePrice = decimal.Zero }},
		{"negative increment", func(r *listing.SubmitRequest) { r.PriceIncrement = ptr.Decimal(decimal.NewFromInt(-1)) }},
		{"increment on fixed price", func(r *listing.SubmitRequest) { r.FixedPrice = true }},
		{"rental unit on goods", func(r *listing.SubmitRequest) { r.RentalUnit = listing.RentalUnitHour }},
		{"space without rental unit", func(r *listing.SubmitRequest) {
			r.MarketType = listing.MarketTypeSpaces
			r.Category = "Gallery"
		}},
		{"missing image", func(r *listing.SubmitRequest) { r.ImageReference = ptr.String(filepath.Join(s.dir, "none.png")) }},
	}
	for _, t := range tests {
		req := s.goodsReq()
		t.modify(&req)
		_, err := s.im.Submit(mockCtx, req)
		s.ErrorIs(err, domain.ErrBadParamInput, t.desc)
	}
}

func (s *sellSuite) TestSubmitImage() {
	png := filepath.Join(s.dir, "art.png")
	s.Require().NoError(os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o600))
	txt := filepath.Join(s.dir, "art.txt")
	s.Require().NoError(os.WriteFile(txt, []byte("just some words"), 0o600))

	s.writer.On("Append", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(nil).Once()
	req := s.goodsReq()
	req.ImageReference = &png
	l, err := s.im.Submit(mockCtx, req)
	s.Require().NoError(err)
	s.Equal(png, *l.ImageReference)

	req.ImageReference = &txt
	_, err = s.im.Submit(mockCtx, req)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *sellSuite) TestSubmitAppendError() {
	s.writer.On("Append", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(domain.ErrConflict).Once()

	_, err := s.im.Submit(mockCtx, s.goodsReq())
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *sellSuite) TestReadOnlyRepo() {
	im := NewSell(&SellUseCaseCfg{Repo: &mocks.Repo{}})
	_, err := im.Submit(mockCtx, s.goodsReq())
	s.ErrorIs(err, domain.ErrUnimplemented)
}
