package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
	ctxFieldsKey
)

// fieldsBag is stored by pointer so fields added later in the call chain are
// visible to everyone holding the same context.
type fieldsBag struct {
	fields []zap.Field
}

// NewFromCtx returns the logger carried by ctx, or the global logger.
func NewFromCtx(ctx context.Context) *zap.Logger {
	if lg, ok := ctx.Value(ctxLoggerKey).(*zap.Logger); ok {
		return lg
	}
	return Global()
}

// WrapInCtx attaches lg to ctx.
func WrapInCtx(ctx context.Context, lg *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, lg)
}

// CtxWithAttrs returns a context carrying the given log fields.
func CtxWithAttrs(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxFieldsKey, &fieldsBag{fields: fields})
}

// SetCtxFields appends fields to the bag already carried by ctx. No-op when
// ctx was not built with CtxWithAttrs.
func SetCtxFields(ctx context.Context, fields ...zap.Field) {
	if bag, ok := ctx.Value(ctxFieldsKey).(*fieldsBag); ok {
		bag.fields = append(bag.fields, fields...)
	}
}

// GetCtxFields returns the fields carried by ctx.
func GetCtxFields(ctx context.Context) []zap.Field {
	if bag, ok := ctx.Value(ctxFieldsKey).(*fieldsBag); ok {
		return bag.fields
	}
	return nil
}

// WithCtxFields returns ctx's fields plus the given ones without touching the bag.
func WithCtxFields(ctx context.Context, fields ...zap.Field) []zap.Field {
	return append(append([]zap.Field{}, GetCtxFields(ctx)...), fields...)
}
