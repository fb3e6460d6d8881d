package toolkit

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/opservo/adminkit/internal/core/uow"
	s3Infra "github.com/opservo/adminkit/internal/infrastructure/s3"
	"github.com/opservo/adminkit/internal/signal"
)

func (t *Toolkit) registerS3Commands() {
	t.register("ListBuckets", "list every bucket on the store", t.listBuckets)
	t.register("EnsureBucket", "create <bucket> if it does not exist", t.ensureBucket)
	t.register("PurgeBucket", "delete every object in <bucket>", t.purgeBucket)
}

func (t *Toolkit) listBuckets(ctx context.Context, inv *signal.Invocation, _ []string) error {
	if t.s3 == nil {
		return t.dispatcher.Signal(inv, "s3 is not configured",
			signal.WithCategory(signal.InvalidOperation))
	}

	if err := t.waitS3Reachable(ctx); err != nil {
		return t.dispatcher.Signal(inv, "object store did not answer",
			signal.WithCause(s3Infra.Wrap(err)))
	}

	out, err := t.s3.ListBuckets(ctx, &awsS3.ListBucketsInput{})
	if err != nil {
		return t.dispatcher.Signal(inv, "cannot list buckets",
			signal.WithCause(s3Infra.Wrap(err)))
	}

	names := lo.Map(out.Buckets, func(b types.Bucket, _ int) string {
		return aws.ToString(b.Name)
	})
	t.lg.Info("buckets listed", zap.Strings("buckets", names))
	return nil
}

func (t *Toolkit) ensureBucket(ctx context.Context, inv *signal.Invocation, args []string) error {
	if t.s3 == nil {
		return t.dispatcher.Signal(inv, "s3 is not configured",
			signal.WithCategory(signal.InvalidOperation))
	}
	if len(args) != 1 || args[0] == "" {
		return t.dispatcher.Signal(inv, "exactly one bucket name is required",
			signal.WithCategory(signal.InvalidOperation))
	}
	bucket := args[0]

	exists, err := s3Infra.BucketExists(ctx, t.s3, bucket)
	if err != nil {
		return t.dispatcher.Signal(inv, "cannot check bucket",
			signal.WithCause(s3Infra.Wrap(err)),
			signal.WithTarget(bucket))
	}
	if exists {
		t.lg.Info("bucket already exists", zap.String("bucket", bucket))
		return nil
	}

	work := uow.UnitOfWork()
	if _, err := t.s3.CreateBucket(ctx, &awsS3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return t.dispatcher.Signal(inv, "cannot create bucket",
			signal.WithCause(s3Infra.Wrap(err)),
			signal.WithTarget(bucket))
	}
	work.Add("delete bucket "+bucket, func() error {
		_, err := t.s3.DeleteBucket(ctx, &awsS3.DeleteBucketInput{Bucket: aws.String(bucket)})
		return err
	})

	// Some S3-compatible stores acknowledge the create before the bucket is
	// visible; verify, and undo the create when verification fails.
	exists, err = s3Infra.BucketExists(ctx, t.s3, bucket)
	if err != nil || !exists {
		if err == nil {
			err = &smithyBucketVanished{bucket: bucket}
		}
		sigErr := t.dispatcher.Signal(inv, "bucket did not appear after create",
			signal.WithCause(s3Infra.Wrap(err)),
			signal.WithTarget(bucket))
		return work.Rollback(sigErr)
	}
	work.Commit()

	t.lg.Info("bucket created", zap.String("bucket", bucket))
	return nil
}

type smithyBucketVanished struct {
	bucket string
}

func (e *smithyBucketVanished) Error() string {
	return "bucket " + e.bucket + " is not visible after create"
}

func (t *Toolkit) purgeBucket(ctx context.Context, inv *signal.Invocation, args []string) error {
	if t.s3 == nil {
		return t.dispatcher.Signal(inv, "s3 is not configured",
			signal.WithCategory(signal.InvalidOperation))
	}
	if len(args) != 1 || args[0] == "" {
		return t.dispatcher.Signal(inv, "exactly one bucket name is required",
			signal.WithCategory(signal.InvalidOperation))
	}
	bucket := args[0]

	purged := 0
	var token *string
	for {
		page, err := t.s3.ListObjectsV2(ctx, &awsS3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			ContinuationToken: token,
		})
		if err != nil {
			return t.dispatcher.Signal(inv, "cannot list objects",
				signal.WithCause(s3Infra.Wrap(err)),
				signal.WithTarget(bucket))
		}

		for _, obj := range page.Contents {
			if _, err := t.s3.DeleteObject(ctx, &awsS3.DeleteObjectInput{
				Bucket: aws.String(bucket),
				Key:    obj.Key,
			}); err != nil {
				if sigErr := t.dispatcher.Signal(inv, "cannot delete object",
					signal.WithCause(s3Infra.Wrap(err)),
					signal.WithTarget(aws.ToString(obj.Key)),
					signal.WithContinue(),
				); sigErr != nil {
					return sigErr
				}
				continue
			}
			purged++
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		token = page.NextContinuationToken
	}

	t.lg.Info("bucket purged",
		zap.String("bucket", bucket),
		zap.Int("objects", purged),
	)
	return nil
}
