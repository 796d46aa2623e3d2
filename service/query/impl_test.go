package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/database/mongoclient"
	"github.com/artbay/goapi/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "artbay_test"
)

type dummy struct {
	Name  string `bson:"name"`
	Score int    `bson:"score"`
}

type querySuite struct {
	suite.Suite
	im *impl
}

func (q *querySuite) SetupTest() {
	uri := os.Getenv("ARTBAY_TEST_MONGO_URI")
	client := mongoclient.MustConnect(mockCTX, mongoclient.Config{
		URI:        uri,
		AuthDBName: "admin",
		DBName:     dbName,
	})
	q.im = New(client, false).(*impl)
	q.Require().NoError(client.Database(dbName).Collection(string(mockTable)).Drop(mockCTX))
}

func (q *querySuite) TestInsertDuplicate() {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, err := q.im.coll(mockTable).Indexes().CreateOne(mockCTX, idx)
	q.Require().NoError(err)

	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", 1}))
	q.ErrorIs(q.im.Insert(mockCTX, mockTable, dummy{"a", 2}), ErrDuplicateKey)
}

func (q *querySuite) TestSearchSortAndCount() {
	for i, name := range []string{"b", "c", "a"} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{name, i}))
	}

	tests := []struct {
		desc   string
		offset int
		limit  int
		sort   string
		exp    []string
	}{
		{"ascending", 0, 0, "name", []string{"a", "b", "c"}},
		{"descending", 0, 0, "-name", []string{"c", "b", "a"}},
		{"paged", 1, 1, "score", []string{"c"}},
	}
	for _, t := range tests {
		res := []dummy{}
		q.Require().NoError(q.im.Search(mockCTX, mockTable, t.offset, t.limit, t.sort, bson.M{}, &res), t.desc)
		names := []string{}
		for _, d := range res {
			names = append(names, d.Name)
		}
		q.Equal(t.exp, names, t.desc)
	}

	n, err := q.im.Count(mockCTX, mockTable, bson.M{"score": bson.M{"$gte": 1}})
	q.Require().NoError(err)
	q.Equal(2, n)

	removed, err := q.im.RemoveAll(mockCTX, mockTable, bson.M{})
	q.Require().NoError(err)
	q.Equal(int64(3), removed)
}

func TestQuerySuite(t *testing.T) {
	if os.Getenv("ARTBAY_TEST_MONGO_URI") == "" {
		t.Skip("ARTBAY_TEST_MONGO_URI not set")
	}
	suite.Run(t, new(querySuite))
}

func TestSortOption(t *testing.T) {
	if sortOption("") != nil {
		t.Fatal("empty sort should be unordered")
	}
	if d := sortOption("-timestamp"); d[0].Key != "timestamp" || d[0].Value != -1 {
		t.Fatalf("unexpected %v", d)
	}
	if d := sortOption("basePrice"); d[0].Key != "basePrice" || d[0].Value != 1 {
		t.Fatalf("unexpected %v", d)
	}
}
