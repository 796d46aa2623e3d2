package compoundcache

import (
	"errors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/service/cache"
)

type impl struct {
	layers []cache.Service
}

// NewCompoundCache chains layers from fastest to slowest. A hit in a lower
// layer is copied into every layer above it.
func NewCompoundCache(layers []cache.Service) cache.Service {
	return &impl{
		layers: layers,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if !errors.Is(err, cache.ErrNotFound) {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	}

	// the bottom layer owns the getter, upper layers fill on the way out
	if len(im.layers) == 0 {
		return cache.ErrNotFound
	}
	bottom := im.layers[len(im.layers)-1]
	if err := bottom.GetByFunc(c, key, container, getter); err != nil {
		return err
	}
	im.fill(c, key, container, len(im.layers)-1)
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	for idx, lyr := range im.layers {
		err := lyr.Get(c, key, container)
		if errors.Is(err, cache.ErrNotFound) {
			continue
		} else if err != nil {
			return err
		}
		im.fill(c, key, container, idx)
		return nil
	}
	return cache.ErrNotFound
}

// fill writes value into the layers above hitIdx
func (im *impl) fill(c ctx.Ctx, key string, value interface{}, hitIdx int) {
	for idx := 0; idx < hitIdx; idx++ {
		if err := im.layers[idx].Set(c, key, value); err != nil {
			c.WithField("err", err).WithField("key", key).WithField("layer", idx).Warn("fill layer failed")
		}
	}
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil && first == nil {
			first = err
		}
	}
	return first
}
