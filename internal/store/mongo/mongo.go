package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gitlab.com/zlyzol/settlemath/internal/config"
	mongodb "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	calculationsCollection = "calculations"
	requestTimeout         = 10 * time.Second
	connectAttempts        = 5
	connectWait            = time.Second
)

// try runs f until it succeeds, at most cnt times, sleeping wait between attempts.
func try(cnt int, wait time.Duration, f func() error) (err error) {
	for i := 0; i < cnt; i++ {
		if i > 0 {
			time.Sleep(wait)
		}
		err = f()
		if err == nil {
			return nil
		}
	}
	return err
}

type Mongo struct {
	logger zerolog.Logger
	cfg    config.MongoConfiguration
	db     *mongodb.Client
}

func NewClient(cfg config.MongoConfiguration) (*Mongo, error) {
	logger := log.With().Str("module", "mongo").Logger()
	connStr := fmt.Sprintf("mongodb://%s:%v", cfg.Host, cfg.Port)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// connect to DB
	clientOptions := options.Client().ApplyURI(connStr)
	db, err := mongodb.Connect(ctx, clientOptions)
	if err != nil {
		logger.Err(err).Msg("Open")
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}
	// the server may still be starting
	err = try(connectAttempts, connectWait, func() error {
		pingCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := db.Ping(pingCtx, nil)
		if err != nil {
			logger.Warn().Err(err).Msg("Ping")
		}
		return err
	})
	if err != nil {
		_ = db.Disconnect(ctx)
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}
	return &Mongo{
		cfg:    cfg,
		db:     db,
		logger: logger,
	}, nil
}

func (m *Mongo) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return m.db.Ping(ctx, nil)
}

func (m *Mongo) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return m.db.Disconnect(ctx)
}

func (m *Mongo) calculations() *mongodb.Collection {
	return m.db.Database(m.cfg.Database).Collection(calculationsCollection)
}
