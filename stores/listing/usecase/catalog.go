package usecase

import (
	"github.com/viney-shih/goroutines"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/log"
	"github.com/artbay/goapi/base/metrics"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
)

type CatalogUseCaseCfg struct {
	Repo listing.Repo
}

type catalogImpl struct {
	repo listing.Repo
	met  metrics.Service
}

func NewCatalog(cfg *CatalogUseCaseCfg) listing.CatalogUsecase {
	return &catalogImpl{
		repo: cfg.Repo,
		met:  metrics.New("catalog"),
	}
}

func (im *catalogImpl) Search(c ctx.Ctx, spec listing.QuerySpec) ([]*listing.Listing, error) {
	snap, err := im.Browse(c, spec)
	if err != nil {
		return nil, err
	}
	return snap.Listings, nil
}

func (im *catalogImpl) Browse(c ctx.Ctx, spec listing.QuerySpec) (listing.Snapshot, error) {
	defer im.met.BumpTime("query.time", "market", string(spec.MarketType)).End()

	all, err := im.repo.Listings(c, spec.MarketType)
	if err != nil {
		c.WithField("err", err).Error("repo.Listings failed")
		return listing.Snapshot{}, err
	}

	// the default range comes from the same snapshot the engine filters
	snap := listing.Snapshot{Bounds: listing.BoundsOf(all)}
	if spec.PriceRange == nil {
		snap.Range = snap.Bounds
	} else {
		snap.Range = *spec.PriceRange
	}
	r := snap.Range
	spec.PriceRange = &r

	snap.Listings = Query(all, spec)
	c.WithFields(log.Fields{
		"market": spec.MarketType,
		"total":  len(all),
		"found":  len(snap.Listings),
	}).Debug("catalog search")
	im.met.BumpHistogram("query.found", float64(len(snap.Listings)), "market", string(spec.MarketType))
	return snap, nil
}

func (im *catalogImpl) PriceBounds(c ctx.Ctx, m listing.MarketType) (listing.PriceRange, error) {
	all, err := im.repo.Listings(c, m)
	if err != nil {
		c.WithField("err", err).Error("repo.Listings failed")
		return listing.PriceRange{}, err
	}
	return listing.BoundsOf(all), nil
}

func (im *catalogImpl) Categories(c ctx.Ctx, m listing.MarketType) ([]listing.Category, error) {
	if !m.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	return listing.Categories(m), nil
}

func (im *catalogImpl) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	for _, m := range listing.MarketTypes {
		all, err := im.repo.Listings(c, m)
		if err != nil {
			c.WithField("err", err).Error("repo.Listings failed")
			return nil, err
		}
		for _, l := range all {
			if l.Id == id {
				return l, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (im *catalogImpl) Markets(c ctx.Ctx) ([]listing.MarketSummary, error) {
	b := goroutines.NewBatch(len(listing.MarketTypes), goroutines.WithBatchSize(len(listing.MarketTypes)))
	defer b.Close()
	for _, m := range listing.MarketTypes {
		market := m
		b.Queue(func() (interface{}, error) {
			all, err := im.repo.Listings(c, market)
			if err != nil {
				return nil, err
			}
			return listing.MarketSummary{
				MarketType: market,
				Count:      len(all),
				PriceRange: listing.BoundsOf(all),
				Categories: listing.Categories(market),
			}, nil
		})
	}
	b.QueueComplete()

	byMarket := map[listing.MarketType]listing.MarketSummary{}
	var firstErr error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("repo.Listings failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s := ret.Value().(listing.MarketSummary)
		byMarket[s.MarketType] = s
	}
	if firstErr != nil {
		return nil, firstErr
	}

	res := make([]listing.MarketSummary, 0, len(listing.MarketTypes))
	for _, m := range listing.MarketTypes {
		res = append(res, byMarket[m])
	}
	return res, nil
}
