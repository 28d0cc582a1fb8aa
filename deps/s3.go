package deps

import (
	"github.com/mitchellh/goamz/aws"
	"github.com/mitchellh/goamz/s3"
	"github.com/pkg/errors"
)

func IgniteS3(container Deps) (Deps, error) {
	conf := container.Config()
	auth, err := aws.GetAuth(conf.UString("amazon.access_key", ""), conf.UString("amazon.secret", ""))
	if err != nil {
		return container, errors.Wrap(err, "aws auth")
	}

	region, exists := aws.Regions[conf.UString("storage.s3.region", "us-west-1")]
	if !exists {
		region = aws.USWest
	}

	bucket, err := conf.String("storage.s3.bucket")
	if err != nil {
		return container, err
	}

	container.S3Provider = s3.New(auth, region).Bucket(bucket)
	return container, nil
}
