package toolkit

import (
	"context"
	"time"

	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v4"
)

// Retry policy for first contact belongs to the command, not to the signal
// facility, so the dial helpers live here.

func newDialBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return b
}

func (t *Toolkit) waitValkeyReachable(ctx context.Context) error {
	return backoff.Retry(func() error {
		return t.valkey.Do(ctx, t.valkey.B().Ping().Build()).Error()
	}, backoff.WithContext(newDialBackOff(), ctx))
}

func (t *Toolkit) waitS3Reachable(ctx context.Context) error {
	return backoff.Retry(func() error {
		_, err := t.s3.ListBuckets(ctx, &awsS3.ListBucketsInput{})
		return err
	}, backoff.WithContext(newDialBackOff(), ctx))
}
