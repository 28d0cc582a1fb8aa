package kv

import (
	"context"
	"net/http"

	"github.com/mitchellh/goamz/s3"
	"github.com/pkg/errors"
)

// S3Store writes every key as a private object in a bucket.
type S3Store struct {
	bucket *s3.Bucket
	prefix string
}

func NewS3Store(bucket *s3.Bucket, prefix string) S3Store {
	return S3Store{bucket, prefix}
}

func (s S3Store) Get(ctx context.Context, key string) (string, error) {
	data, err := s.bucket.Get(s.prefix + key)
	if err != nil {
		if e, ok := err.(*s3.Error); ok && (e.StatusCode == http.StatusNotFound || e.Code == "NoSuchKey") {
			return "", ErrNotFound
		}
		return "", errors.Wrapf(err, "s3 get %s", key)
	}
	return string(data), nil
}

func (s S3Store) Set(ctx context.Context, key, value string) error {
	err := s.bucket.Put(s.prefix+key, []byte(value), "application/json", s3.Private)
	if err != nil {
		return errors.Wrapf(err, "s3 put %s", key)
	}
	return nil
}
