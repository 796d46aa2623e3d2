package ctx

import (
	"context"
	"time"

	"github.com/artbay/goapi/base/log"
)

// KeyRequestID is the context key holding the id echo assigned to a request
const KeyRequestID = "requestID"

// Ctx is a context.Context that also carries a logger tagged with every value
// stored through WithValue.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func Todo() Ctx {
	return Ctx{
		Context: context.TODO(),
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithRequestID tags the context and its logger with the request id
func WithRequestID(parent Ctx, id string) Ctx {
	return WithValue(parent, KeyRequestID, id)
}

// RequestID returns the id stored by WithRequestID, or "" if none
func RequestID(c Ctx) string {
	id, _ := c.Value(KeyRequestID).(string)
	return id
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}
