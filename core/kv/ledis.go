package kv

import (
	"context"

	"github.com/pkg/errors"
	lediscfg "github.com/siddontang/ledisdb/config"
	"github.com/siddontang/ledisdb/ledis"
)

// LedisStore persists values in an embedded ledisdb database.
type LedisStore struct {
	db *ledis.DB
}

func NewLedisStore(db *ledis.DB) LedisStore {
	return LedisStore{db}
}

// OpenLedis opens (or creates) a ledisdb data dir and selects db 0.
func OpenLedis(dir string) (*ledis.Ledis, *ledis.DB, error) {
	conf := lediscfg.NewConfigDefault()
	if dir != "" {
		conf.DataDir = dir
	}
	conn, err := ledis.Open(conf)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open ledis at %s", conf.DataDir)
	}
	db, err := conn.Select(0)
	if err != nil {
		conn.Close()
		return nil, nil, errors.Wrap(err, "select ledis db")
	}
	return conn, db, nil
}

func (s LedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.db.Get([]byte(key))
	if err != nil {
		return "", errors.Wrapf(err, "ledis get %s", key)
	}
	// ledis returns a nil slice for missing keys.
	if v == nil {
		return "", ErrNotFound
	}
	return string(v), nil
}

func (s LedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.db.Set([]byte(key), []byte(value)); err != nil {
		return errors.Wrapf(err, "ledis set %s", key)
	}
	return nil
}
