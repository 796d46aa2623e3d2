package listing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/artbay/goapi/domain"
)

func validGoods() Listing {
	return Listing{
		Id:             "a1",
		MarketType:     MarketTypeGoods,
		Title:          "Sunset Dream",
		Category:       "Painting",
		BasePrice:      decimal.NewFromInt(100),
		PriceIncrement: decimal.NewFromInt(10),
		CurrentPrice:   decimal.NewFromInt(120),
		IsAuction:      true,
		Timestamp:      time.Unix(1700000000, 0),
	}
}

func TestNewValidates(t *testing.T) {
	cases := []struct {
		name   string
		modify func(l *Listing)
		ok     bool
	}{
		{"valid goods", func(l *Listing) {}, true},
		{"valid space", func(l *Listing) {
			l.MarketType = MarketTypeSpaces
			l.Category = "Cafe Wall"
			l.RentalUnit = RentalUnitWeek
		}, true},
		{"empty id", func(l *Listing) { l.Id = "" }, false},
		{"unknown market", func(l *Listing) { l.MarketType = "boats" }, false},
		{"category of other market", func(l *Listing) { l.Category = "Gallery" }, false},
		{"category all", func(l *Listing) { l.Category = CategoryAll }, false},
		{"negative base", func(l *Listing) { l.BasePrice = decimal.NewFromInt(-1) }, false},
		{"negative increment", func(l *Listing) { l.PriceIncrement = decimal.NewFromInt(-1) }, false},
		{"current below base", func(l *Listing) { l.CurrentPrice = decimal.NewFromInt(99) }, false},
		{"negative popularity", func(l *Listing) { l.Popularity = -1 }, false},
		{"rented goods", func(l *Listing) { l.RentalUnit = RentalUnitDay }, false},
		{"bad rental unit", func(l *Listing) {
			l.MarketType = MarketTypeSpaces
			l.Category = "Outdoor"
			l.RentalUnit = "Year"
		}, false},
	}

	for _, c := range cases {
		l := validGoods()
		c.modify(&l)
		res, err := New(l)
		if c.ok {
			assert.NoError(t, err, c.name)
			assert.Equal(t, l, *res, c.name)
		} else {
			assert.True(t, errors.Is(err, domain.ErrBadParamInput), c.name)
			assert.Nil(t, res, c.name)
		}
	}
}

func TestOfferAndBidIncrement(t *testing.T) {
	l := validGoods()
	assert.True(t, decimal.NewFromInt(120).Equal(l.OfferPrice()))
	assert.True(t, decimal.NewFromInt(10).Equal(l.BidIncrement()))

	l.CurrentPrice = decimal.RequireFromString("114.5")
	l.PriceIncrement = decimal.RequireFromString("9.5")
	assert.True(t, decimal.RequireFromString("114.5").Equal(l.OfferPrice()))
	assert.True(t, decimal.RequireFromString("9.5").Equal(l.BidIncrement()))

	l.IsAuction = false
	assert.True(t, decimal.RequireFromString("114.5").Equal(l.OfferPrice()))
	assert.True(t, l.BidIncrement().IsZero())
}

func TestParseMarketType(t *testing.T) {
	for in, want := range map[string]MarketType{
		"goods": MarketTypeGoods, "Art": MarketTypeGoods, "0": MarketTypeGoods,
		"spaces": MarketTypeSpaces, " space ": MarketTypeSpaces, "1": MarketTypeSpaces,
	} {
		got, err := ParseMarketType(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMarketType("boats")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestInCategory(t *testing.T) {
	l := validGoods()
	painting, sculpture, all, empty := "Painting", "Sculpture", CategoryAll, ""
	lower := "painting"
	assert.True(t, l.InCategory(nil))
	assert.True(t, l.InCategory(&all))
	assert.True(t, l.InCategory(&empty))
	assert.True(t, l.InCategory(&painting))
	assert.False(t, l.InCategory(&sculpture))
	assert.False(t, l.InCategory(&lower), "category match is case-sensitive")
}

func TestCategories(t *testing.T) {
	goods := Categories(MarketTypeGoods)
	assert.Len(t, goods, 5)
	assert.Equal(t, Category{Name: "Painting", Icon: "paintpalette"}, goods[0])

	goods[0].Name = "changed"
	assert.Equal(t, "Painting", Categories(MarketTypeGoods)[0].Name)

	assert.True(t, IsValidCategory(MarketTypeSpaces, "Pop-up"))
	assert.False(t, IsValidCategory(MarketTypeSpaces, "Painting"))
	assert.Empty(t, Categories("boats"))
}

func TestClone(t *testing.T) {
	l := validGoods()
	ref := "/tmp/a.png"
	l.ImageReference = &ref
	l.Images = []string{"photo"}

	c := l.Clone()
	assert.Equal(t, l, *c)
	*c.ImageReference = "/tmp/b.png"
	c.Images[0] = "cube"
	c.Title = "changed"
	assert.Equal(t, "/tmp/a.png", *l.ImageReference)
	assert.Equal(t, "photo", l.Images[0])
	assert.Equal(t, "Sunset Dream", l.Title)
}
