package repository

import (
	"sync"
	"time"

	"golang.org/x/xerrors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
)

type memoryRepo struct {
	mu       sync.RWMutex
	byMarket map[listing.MarketType][]*listing.Listing
	ids      map[string]struct{}
}

// NewMemory keeps listings in process memory. Readers get copies, so callers
// can never change what is stored.
func NewMemory(seed []*listing.Listing) (listing.RepoWriter, error) {
	im := &memoryRepo{
		byMarket: map[listing.MarketType][]*listing.Listing{},
		ids:      map[string]struct{}{},
	}
	for _, l := range seed {
		if err := im.add(l); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// NewFixture seeds a memory repo with the sample catalog, dated relative to now()
func NewFixture(now func() time.Time) (listing.RepoWriter, error) {
	seed, err := FixtureListings(now())
	if err != nil {
		return nil, err
	}
	return NewMemory(seed)
}

func (im *memoryRepo) Listings(c ctx.Ctx, m listing.MarketType) ([]*listing.Listing, error) {
	if !m.IsValid() {
		return nil, xerrors.Errorf("market type %q: %w", m, domain.ErrBadParamInput)
	}

	im.mu.RLock()
	defer im.mu.RUnlock()
	src := im.byMarket[m]
	res := make([]*listing.Listing, len(src))
	for i, l := range src {
		res[i] = l.Clone()
	}
	return res, nil
}

func (im *memoryRepo) Append(c ctx.Ctx, l *listing.Listing) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.add(l)
}

func (im *memoryRepo) add(l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, ok := im.ids[l.Id]; ok {
		return xerrors.Errorf("listing %s: %w", l.Id, domain.ErrConflict)
	}
	im.ids[l.Id] = struct{}{}
	im.byMarket[l.MarketType] = append(im.byMarket[l.MarketType], l.Clone())
	return nil
}
