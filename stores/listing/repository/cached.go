package repository

import (
	"encoding/json"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/log"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/service/cache"
	"github.com/artbay/goapi/service/cache/provider/primitive"
)

const (
	// MinLocalSizeMB lets one market collection grow to about 64KB in the
	// local cache
	MinLocalSizeMB = 64

	// collections may grow this many times over their startup size before
	// they stop fitting the local cache
	localGrowth = 4
)

// CachedRepo serves market collections from a cache and drops them on write
type CachedRepo interface {
	listing.RepoWriter
	Invalidate(c ctx.Ctx, m listing.MarketType) error
}

type cachedRepo struct {
	repo  listing.Repo
	cache cache.Service
}

func NewCached(repo listing.Repo, cache cache.Service) CachedRepo {
	return &cachedRepo{
		repo:  repo,
		cache: cache,
	}
}

func (im *cachedRepo) Listings(c ctx.Ctx, m listing.MarketType) ([]*listing.Listing, error) {
	res := []*listing.Listing{}
	err := im.cache.GetByFunc(c, string(m), &res, func() (interface{}, error) {
		return im.repo.Listings(c, m)
	})
	if err != nil {
		c.WithField("err", err).Error("cache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

// Append writes through to the wrapped repo, which must be a listing.Writer
func (im *cachedRepo) Append(c ctx.Ctx, l *listing.Listing) error {
	w, ok := im.repo.(listing.Writer)
	if !ok {
		return domain.ErrUnimplemented
	}
	if err := w.Append(c, l); err != nil {
		return err
	}
	if err := im.Invalidate(c, l.MarketType); err != nil {
		c.WithField("err", err).Warn("Invalidate failed")
	}
	return nil
}

func (im *cachedRepo) Invalidate(c ctx.Ctx, m listing.MarketType) error {
	return im.cache.Del(c, string(m))
}

// LocalSizeMB returns the local cache size for repo: at least configured and
// MinLocalSizeMB, and large enough for every market collection to grow
// localGrowth times.
func LocalSizeMB(c ctx.Ctx, repo listing.Repo, configured int) (int, error) {
	largest := 0
	for _, m := range listing.MarketTypes {
		ls, err := repo.Listings(c, m)
		if err != nil {
			c.WithField("err", err).Error("repo.Listings failed")
			return 0, err
		}
		b, err := json.Marshal(ls)
		if err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return 0, err
		}
		if len(b) > largest {
			largest = len(b)
		}
	}

	size := sizeMBFor(largest, configured)
	if size != configured {
		c.WithFields(log.Fields{"configured": configured, "size": size, "largest": largest}).Info("local listing cache resized")
	}
	return size, nil
}

func sizeMBFor(entryBytes, configured int) int {
	size := configured
	if size < MinLocalSizeMB {
		size = MinLocalSizeMB
	}
	if need := primitive.SizeMBFor(entryBytes * localGrowth); need > size {
		size = need
	}
	return size
}
