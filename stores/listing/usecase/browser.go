package usecase

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/goroutine"
	"github.com/artbay/goapi/domain/listing"
)

// Result is what a Browser publishes after every state change
type Result struct {
	Spec     listing.QuerySpec
	Bounds   listing.PriceRange
	Listings []*listing.Listing
	Err      error
}

type subscriber struct {
	id int
	fn func(Result)
}

// Browser owns the query state of one browsing session and re-runs the
// catalog search whenever a part of it changes.
type Browser struct {
	catalog listing.CatalogUsecase

	mu         sync.Mutex
	marketType listing.MarketType
	category   *string
	searchText string
	priceRange *listing.PriceRange
	sortKey    listing.SortKey
	last       Result

	subMu  sync.Mutex
	subs   []subscriber
	nextId int
}

type BrowserOptionsFunc func(*Browser) error

func WithInitialSortKey(key listing.SortKey) BrowserOptionsFunc {
	return func(b *Browser) error {
		k, err := listing.ParseSortKey(string(key))
		if err != nil {
			return err
		}
		b.sortKey = k
		return nil
	}
}

func WithSubscriber(fn func(Result)) BrowserOptionsFunc {
	return func(b *Browser) error {
		b.Subscribe(fn)
		return nil
	}
}

// NewBrowser starts a session on market m and runs the first query.
// Subscribers added through options receive that first result.
func NewBrowser(c ctx.Ctx, catalog listing.CatalogUsecase, m listing.MarketType, opts ...BrowserOptionsFunc) (*Browser, error) {
	if _, err := listing.NewQuerySpec(m); err != nil {
		return nil, err
	}
	b := &Browser{
		catalog:    catalog,
		marketType: m,
		sortKey:    listing.SortKeyNewest,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	if err := b.update(c, func() error { return nil }); err != nil {
		c.WithField("err", err).Warn("browser initial query failed")
	}
	return b, nil
}

// Current returns the last published result
func (b *Browser) Current() Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Subscribe registers fn and returns a func removing it
func (b *Browser) Subscribe(fn func(Result)) (unsubscribe func()) {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	id := b.nextId
	b.nextId++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		b.subMu.Lock()
		defer b.subMu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// SetMarketType switches market, clearing the category and the chosen price
// range so the next query uses the new market's bounds.
func (b *Browser) SetMarketType(c ctx.Ctx, m listing.MarketType) error {
	return b.update(c, func() error {
		if !m.IsValid() {
			_, err := listing.NewQuerySpec(m)
			return err
		}
		b.marketType = m
		b.category = nil
		b.priceRange = nil
		return nil
	})
}

// SetCategory filters on name; "" and listing.CategoryAll clear the filter
func (b *Browser) SetCategory(c ctx.Ctx, name string) error {
	return b.update(c, func() error {
		if _, err := listing.NewQuerySpec(b.marketType, listing.WithCategory(name)); err != nil {
			return err
		}
		if name == "" || name == listing.CategoryAll {
			b.category = nil
			return nil
		}
		b.category = &name
		return nil
	})
}

func (b *Browser) SetSearchText(c ctx.Ctx, text string) error {
	return b.update(c, func() error {
		b.searchText = text
		return nil
	})
}

func (b *Browser) SetPriceRange(c ctx.Ctx, low, high decimal.Decimal) error {
	return b.update(c, func() error {
		b.priceRange = &listing.PriceRange{Low: low, High: high}
		return nil
	})
}

// ResetPriceRange goes back to the bounds of the current market
func (b *Browser) ResetPriceRange(c ctx.Ctx) error {
	return b.update(c, func() error {
		b.priceRange = nil
		return nil
	})
}

func (b *Browser) SetSortKey(c ctx.Ctx, key listing.SortKey) error {
	return b.update(c, func() error {
		k, err := listing.ParseSortKey(string(key))
		if err != nil {
			return err
		}
		b.sortKey = k
		return nil
	})
}

// update applies change and re-queries under one lock, so no query ever sees
// a half applied change. Subscribers are notified after the lock is released.
func (b *Browser) update(c ctx.Ctx, change func() error) error {
	b.mu.Lock()
	if err := change(); err != nil {
		b.mu.Unlock()
		return err
	}
	res := b.query(c)
	b.last = res
	b.mu.Unlock()

	b.publish(c, res)
	return res.Err
}

func (b *Browser) query(c ctx.Ctx) Result {
	spec := listing.QuerySpec{
		MarketType: b.marketType,
		Category:   b.category,
		SearchText: b.searchText,
		SortKey:    b.sortKey,
	}

	// without a chosen range the catalog defaults to the bounds of the read
	// it filters, so Bounds and Listings always describe one collection
	if b.priceRange != nil {
		r := *b.priceRange
		spec.PriceRange = &r
	}

	snap, err := b.catalog.Browse(c, spec)
	if err != nil {
		c.WithField("err", err).Error("catalog.Browse failed")
		return Result{Spec: spec, Listings: []*listing.Listing{}, Err: err}
	}
	r := snap.Range
	spec.PriceRange = &r
	return Result{Spec: spec, Bounds: snap.Bounds, Listings: snap.Listings}
}

func (b *Browser) publish(c ctx.Ctx, res Result) {
	b.subMu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.subMu.Unlock()

	for _, s := range subs {
		fn := s.fn
		if p := <-goroutine.RecoverableGo(func() { fn(res) }, goroutine.WithName("browser.subscriber")); p != nil {
			c.WithField("panic", p.Panic).Warn("browser subscriber panicked")
		}
	}
}
