package mongoclient

import (
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/artbay/goapi/base/backoff"
	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/log"
)

const (
	mgSocketTimeout = 60 * time.Second
	connectAttempts = 4
)

// Client wraps mongo.Client with the database it was opened for
type Client struct {
	DbName string
	*mongo.Client
}

// Config holds the connection settings read from the mongo config section
type Config struct {
	URI            string
	AuthDBName     string
	DBName         string
	SSL            bool
	SetSafe        bool
	PoolMultiplier float64
}

// MustConnect connects or panics
func MustConnect(c ctx.Ctx, cfg Config) *Client {
	cli, err := Connect(c, cfg)
	if err != nil {
		c.WithFields(log.Fields{"dbName": cfg.DBName, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// Connect dials mongo, retrying with exponential backoff, and checks that the
// database can be listed.
func Connect(c ctx.Ctx, cfg Config) (*Client, error) {
	connSetting, err := connstring.Parse(cfg.URI)
	if err != nil {
		c.WithFields(log.Fields{"dbName": cfg.DBName, "err": err}).Error("fail to parse connstring")
		return nil, err
	}

	clientOpts := options.Client().ApplyURI(cfg.URI).SetSocketTimeout(mgSocketTimeout)

	// connstring without authSource authenticates against AuthDBName
	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	if cfg.PoolMultiplier > 0 {
		// every host keeps its own pool
		poolSize := int(float64(runtime.NumCPU()) * cfg.PoolMultiplier)
		poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		clientOpts.SetMinPoolSize(uint64(poolSize / 4))
		clientOpts.SetMaxPoolSize(uint64(poolSize))
		c.WithField("poolSize", poolSize).Info("mongo driver pool size")
	}

	if cfg.SSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}
	if cfg.SetSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}

	client, err := mongo.NewClient(clientOpts)
	if err != nil {
		c.WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("fail to create mongo client")
		return nil, err
	}
	if err := client.Connect(c); err != nil {
		c.WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("fail to connect mongo db")
		return nil, err
	}

	b := backoff.NewExponential(500*time.Millisecond, 4*time.Second)
	err = b.Retry(c, connectAttempts, func() error {
		if err := client.Ping(c, readpref.Primary()); err != nil {
			c.WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Warn("ping mongo failed, retrying")
			return err
		}
		_, err := client.Database(cfg.DBName).ListCollectionNames(c, bson.D{})
		return err
	})
	if err != nil {
		c.WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "dbName": cfg.DBName, "err": err}).Error("fail to test mongo db")
		_ = client.Disconnect(c)
		return nil, err
	}

	c.WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "db": cfg.DBName}).Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DBName,
	}, nil
}
