package s3

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"

	"github.com/opservo/adminkit/internal/signal"
)

// Classify maps an S3 API error onto the toolkit's failure taxonomy.
func Classify(err error) signal.Category {
	if err == nil {
		return signal.Unspecified
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AccountProblem", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
			return signal.Permission
		case "NoSuchBucket", "NoSuchKey", "BucketNotEmpty", "BucketAlreadyExists", "BucketAlreadyOwnedByYou", "InvalidBucketName":
			return signal.InvalidOperation
		case "SlowDown", "TooManyBuckets", "ServiceUnavailable", "QuotaExceeded":
			return signal.ResourceLimit
		default:
			return signal.Unspecified
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return signal.Connection
	}
	return signal.Unspecified
}

// Wrap attaches the classification so the dispatcher can inherit it.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return signal.Categorize(err, Classify(err))
}
