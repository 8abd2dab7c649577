// Package mongodb implements the user and content repositories on MongoDB.
// Documents keep the field names the collections have always used
// (created_by, graduation_year, createdAt, ...).
package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/geocoder89/alumnihub/internal/observability"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	ColUsers         = "users"
	ColJobs          = "jobs"
	ColEvents        = "events"
	ColAnnouncements = "announcements"
)

type Store struct {
	db   *mongo.Database
	prom *observability.Prom
}

// NewStore wraps db and makes sure the indexes exist. prom may be nil.
func NewStore(ctx context.Context, db *mongo.Database, prom *observability.Prom) (*Store, error) {
	s := &Store{db: db, prom: prom}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.observe("ping", func() error {
		return s.db.Client().Ping(ctx, readpref.Primary())
	})
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) observe(op string, fn func() error) error {
	if s.prom != nil {
		return s.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		// email uniqueness is enforced here, not in application code
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColUsers, bson.D{{Key: "role", Value: 1}, {Key: "status", Value: 1}}, false},

		{ColJobs, bson.D{{Key: "createdAt", Value: -1}}, false},
		{ColJobs, bson.D{{Key: "title", Value: 1}}, false},

		{ColEvents, bson.D{{Key: "date", Value: 1}}, false},

		{ColAnnouncements, bson.D{{Key: "createdAt", Value: -1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		name, err := s.col(i.col).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
		slog.Default().DebugContext(ctx, "mongo_index_ready", "collection", i.col, "index", name)
	}

	return nil
}
