/*Package metrics wraps datadog-go to record catalog metrics.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Counts: *.count
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/artbay/goapi/base/env"
	"github.com/artbay/goapi/base/log"
)

// Ender is returned by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	withPodName bool
	client      statsCli
}

// WithoutPodName drops the pod tag, useful when grouping by pod is unnecessary
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// WithClient sends metrics to cli instead of the shared datadog clients
func WithClient(cli statsCli) Option {
	return func(o *opt) {
		o.client = cli
	}
}

// New creates a metric client with pkgName as key prefix
func New(pkgName string, options ...Option) Service {
	o := opt{withPodName: true}
	for _, option := range options {
		option(&o)
	}

	// an empty host tag removes every tag datadog attaches for the host
	tags := []string{"host:"}
	if o.withPodName {
		tags = append(tags, "pod:"+env.PodName())
	}
	tags = append(tags,
		"env:"+viper.GetString("env_name"),
		"app:"+viper.GetString("app_name"),
	)

	return &Metrics{
		pkgName: pkgName,
		tags:    tags,
		client:  o.client,
	}
}

// Metrics prefixes every key with its package name and appends base tags
type Metrics struct {
	pkgName string
	tags    []string
	client  statsCli
}

func (mt *Metrics) cli() statsCli {
	if mt.client != nil {
		return mt.client
	}
	return nextClient()
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) allTags(tags []string) []string {
	out := make([]string, 0, len(mt.tags)+len(tags)/2)
	out = append(out, mt.tags...)
	return append(out, parseTag(tags)...)
}

// recoverBump keeps a malformed tag list from taking the caller down
func (mt *Metrics) recoverBump(fn, key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"err":  err,
			"func": fn,
			"key":  mt.key(key) + "#" + strings.Join(tags, "#"),
		}).Error("bump panic")
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpAvg", key, tags)
	if err := mt.cli().Gauge(mt.key(key), val, mt.allTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpSum", key, tags)
	if err := mt.cli().Count(mt.key(key), int64(val), mt.allTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpHistogram", key, tags)
	if err := mt.cli().Histogram(mt.key(key), val, mt.allTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer. Record the duration of a function with
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) (e Ender) {
	defer func() {
		if err := recover(); err != nil {
			log.Log().WithFields(log.Fields{"err": err, "func": "BumpTime", "key": mt.key(key)}).Error("bump panic")
			e = nopEnder{}
		}
	}()
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  mt.allTags(tags),
		cli:   mt.cli(),
	}
}

func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
	cli   statsCli
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	ms := float64(d) / float64(time.Millisecond)
	if err := t.cli.TimeInMilliseconds(t.key, ms, t.tags, sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": ms, "func": "BumpTime"}).Error("Bump fail")
	}
}

// nopEnder is handed out when a timer could not be started
type nopEnder struct{}

func (nopEnder) End() {}
