package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/domain/keys"
	"github.com/artbay/goapi/service/cache/provider"
	"github.com/artbay/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Title string `json:"title"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"Sunset Dream"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetExpires() {
	var (
		k = "key"
		v = value{"Sunset Dream"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &value{"Gallery One"}, nil
	}

	c := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "key", c, getter))
	ts.Equal(value{"Gallery One"}, *c)

	// second call is served from cache
	c2 := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "key", c2, getter))
	ts.Equal(value{"Gallery One"}, *c2)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncPlainValue() {
	c := []string{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "plain", &c, func() (interface{}, error) {
		return []string{"Painting", "Sculpture"}, nil
	}))
	ts.Equal([]string{"Painting", "Sculpture"}, c)
}

func (ts *testsuite) TestGetByFuncGetterError() {
	boom := errors.New("provider down")
	c := &value{}
	ts.Equal(boom, ts.im.GetByFunc(mockCtx, "err", c, func() (interface{}, error) {
		return nil, boom
	}))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "err", c))
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", value{"x"}))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "k", &value{}))
}
