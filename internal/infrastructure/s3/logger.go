package s3

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func awsLogMode(lgr *zap.Logger) aws.ClientLogMode {
	mode := aws.LogRetries
	if lgr.Level() == zapcore.DebugLevel {
		mode = mode |
			aws.LogRequest |
			aws.LogResponse |
			aws.LogRequestWithBody |
			aws.LogResponseWithBody |
			aws.LogDeprecatedUsage
	}
	return mode
}

func awsLoggerFunc(lgr *zap.Logger) logging.LoggerFunc {
	return func(classification logging.Classification, format string, v ...interface{}) {
		switch classification {
		case logging.Debug:
			lgr.Sugar().Debugf(format, v...)
		case logging.Warn:
			lgr.Sugar().Warnf(format, v...)
		}
	}
}
