package kv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// MongoStore keeps one document per key in a collection.
type MongoStore struct {
	db         *mgo.Database
	collection string
}

type mongoEntry struct {
	Key     string    `bson:"_id"`
	Value   string    `bson:"value"`
	Updated time.Time `bson:"updated_at"`
}

func NewMongoStore(db *mgo.Database, collection string) MongoStore {
	if collection == "" {
		collection = "storage"
	}
	return MongoStore{db, collection}
}

func (s MongoStore) Get(ctx context.Context, key string) (string, error) {
	var entry mongoEntry
	err := s.db.C(s.collection).FindId(key).One(&entry)
	if err == mgo.ErrNotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "mongo get %s", key)
	}
	return entry.Value, nil
}

func (s MongoStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.C(s.collection).UpsertId(key, bson.M{
		"$set": bson.M{
			"value":      value,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		return errors.Wrapf(err, "mongo set %s", key)
	}
	return nil
}
