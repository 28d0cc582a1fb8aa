package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tidwall/buntdb"
)

// BuntStore persists values in a buntdb file (or ":memory:").
type BuntStore struct {
	db *buntdb.DB
}

func NewBuntStore(db *buntdb.DB) BuntStore {
	return BuntStore{db}
}

func (s BuntStore) Get(ctx context.Context, key string) (value string, err error) {
	err = s.db.View(func(tx *buntdb.Tx) error {
		value, err = tx.Get(key)
		return err
	})
	if err == buntdb.ErrNotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "bunt get %s", key)
	}
	return
}

func (s BuntStore) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "bunt set %s", key)
	}
	return nil
}
