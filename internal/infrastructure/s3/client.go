package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/samber/lo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.uber.org/zap"
)

func NewClient(config *Config, lg *zap.Logger) (*s3.Client, error) {
	cfg, err := awsCfg.LoadDefaultConfig(
		context.TODO(),
		awsCfg.WithRegion(config.Region),
		awsCfg.WithCredentialsProvider(aws.CredentialsProviderFunc(func(_ context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     config.AccessKeyId,
				SecretAccessKey: config.SecretAccessKey,
			}, nil
		})),
		awsCfg.WithLogger(awsLoggerFunc(lg)),
		awsCfg.WithLogConfigurationWarnings(true),
		awsCfg.WithClientLogMode(awsLogMode(lg)),
	)
	if err != nil {
		return nil, err
	}

	otelaws.AppendMiddlewares(&cfg.APIOptions)
	return s3.NewFromConfig(
		cfg,
		func(options *s3.Options) {
			options.BaseEndpoint = aws.String(config.Url)
			options.UsePathStyle = true
		},
	), nil
}

// BucketExists checks by listing; HeadBucket needs extra permissions on some
// S3-compatible stores.
func BucketExists(ctx context.Context, client *s3.Client, bucketName string) (bool, error) {
	buckets, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(buckets.Buckets, func(item types.Bucket) bool {
		return item.Name != nil && *item.Name == bucketName
	}), nil
}
