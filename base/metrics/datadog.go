package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/artbay/goapi/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	// DdPort is the dogstatsd agent port
	DdPort = 8125

	// 1 means always send
	sampleRate = 1
	// buffer 10 metrics before flushing to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	// round robin index into clients
	clientsIdx = int32(0)
	clients    []statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initClients connects to the datadog agent at datadog_host. Without a host,
// every metric is written to the debug log instead.
func initClients() {
	host := viper.GetString("datadog_host")
	clients = make([]statsCli, ddClientsSize)
	if host == "" {
		log.Log().Info("datadog_host not set, metrics go to log")
		for i := range clients {
			clients[i] = &LogClient{}
		}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, DdPort)
	for i := 0; i < ddClientsSize; i++ {
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		clients[i] = cli
	}
	log.Log().WithField("addr", addr).Info("datadog agent connected")
}

func nextClient() statsCli {
	initOnce.Do(initClients)
	i := atomic.AddInt32(&clientsIdx, 1) & ddClientsIdxMask
	return clients[i]
}
