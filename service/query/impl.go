package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/database/mongoclient"
	"github.com/artbay/goapi/base/log"
	"github.com/artbay/goapi/base/metrics"
	"github.com/artbay/goapi/domain"
)

const (
	queryMaxTime    = 20 * time.Second
	slowThresholdMs = int64(500)
)

var (
	timeNow = time.Now
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
	met        metrics.Service
}

// New initializes an impl. With checkIndex, reads that would scan a whole
// collection fail with ErrCollScan.
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
		met:        metrics.New("mongo"),
	}
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) Insert(c ctx.Ctx, table domain.Table, insert interface{}) error {
	defer im.met.BumpTime("time", "func", "insert", "table", string(table)).End()
	defer slowLog(c, string(table), "insert", nil, "")()

	c = ctx.WithValue(c, "table", table)
	if _, err := im.coll(table).InsertOne(c, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		c.WithField("err", err).Error("Insert: InsertOne failed")
		return err
	}
	return nil
}

func (im *impl) Count(c ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	defer im.met.BumpTime("time", "func", "count", "table", string(table)).End()
	defer slowLog(c, string(table), "count", selector, "")()

	c = ctx.WithValues(c, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	if err := im.checkQueryIndex(c, string(table), "count", bson.E{Key: "query", Value: selector}); err != nil {
		c.WithField("err", err).Error("checkQueryIndex failed")
		return 0, err
	}

	n, err := im.coll(table).CountDocuments(c, selector, options.Count().SetMaxTime(queryMaxTime))
	if err != nil {
		c.WithField("err", err).Error("Count: CountDocuments failed")
		return 0, err
	}
	return int(n), nil
}

func (im *impl) Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	defer im.met.BumpTime("time", "func", "search", "table", string(table)).End()
	defer slowLog(c, string(table), "search", query, sort)()

	c = ctx.WithValues(c, map[string]interface{}{
		"table": table,
		"query": query,
	})

	if err := im.checkQueryIndex(c, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		c.WithField("err", err).Error("checkQueryIndex failed")
		return err
	}

	findOpts := options.Find().SetMaxTime(queryMaxTime).SetSkip(int64(offset))
	if limit > 0 {
		findOpts.SetLimit(int64(limit))
	}
	if s := sortOption(sort); len(s) > 0 {
		findOpts.SetSort(s)
	}

	cursor, err := im.coll(table).Find(c, query, findOpts)
	if err != nil {
		c.WithField("err", err).Error("Search: Find failed")
		return err
	}
	defer cursor.Close(c)

	if err := cursor.All(c, results); err != nil {
		c.WithField("err", err).Error("Search: cursor.All failed")
		return err
	}
	return nil
}

func (im *impl) RemoveAll(c ctx.Ctx, table domain.Table, selector interface{}) (int64, error) {
	defer im.met.BumpTime("time", "func", "removeall", "table", string(table)).End()
	defer slowLog(c, string(table), "removeAll", selector, "")()

	res, err := im.coll(table).DeleteMany(c, selector)
	if err != nil {
		c.WithFields(log.Fields{"table": table, "err": err}).Error("RemoveAll: DeleteMany failed")
		return 0, err
	}
	return res.DeletedCount, nil
}

func sortOption(sort string) bson.D {
	switch {
	case sort == "":
		return nil
	case sort[0] == '-':
		return bson.D{{Key: sort[1:], Value: -1}}
	default:
		return bson.D{{Key: sort, Value: 1}}
	}
}

func slowLog(c ctx.Ctx, table, action string, query interface{}, sort string) func() {
	start := timeNow()
	return func() {
		elapsedMs := time.Since(start).Milliseconds()
		if elapsedMs < slowThresholdMs {
			return
		}
		c.WithFields(log.Fields{
			"table":      table,
			"action":     action,
			"startTime":  start.Unix(),
			"durationMs": elapsedMs,
			"query":      query,
			"sort":       sort,
		}).Warn("mongo slowlog")
	}
}

func (im *impl) checkQueryIndex(c ctx.Ctx, table string, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	// https://docs.mongodb.com/manual/reference/command/explain/
	res := im.client.Database(im.client.DbName).RunCommand(c, bson.D{
		{Key: "explain", Value: bson.D{{Key: action, Value: table}, query}},
		{Key: "verbosity", Value: "queryPlanner"},
	})

	var m bson.M
	if err := res.Decode(&m); err != nil {
		c.WithField("err", err).Warn("checkQueryIndex decode failed")
		return nil
	}

	// the plan layout differs between server versions, so match on text
	if strings.Contains(fmt.Sprintf("%v", m), "COLLSCAN") {
		c.WithField("query", query).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
