package appcontext

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextId int

const (
	ruleSourceKeyId contextId = iota
	pathKeyId
	entryKeyId
)

func WithRuleSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, ruleSourceKeyId, source)
}

func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKeyId, path)
}

func WithEntry(ctx context.Context, entry string) context.Context {
	return context.WithValue(ctx, entryKeyId, entry)
}

func LoggerFromContext(logger logrus.FieldLogger, ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return logger
	}

	result := logger

	if ctxRuleSource, ok := ctx.Value(ruleSourceKeyId).(string); ok && ctxRuleSource != "" {
		result = result.WithField("rule", ctxRuleSource)
	}

	if ctxPath, ok := ctx.Value(pathKeyId).(string); ok && ctxPath != "" {
		result = result.WithField("path", ctxPath)
	}

	if ctxEntry, ok := ctx.Value(entryKeyId).(string); ok && ctxEntry != "" {
		result = result.WithField("entry", ctxEntry)
	}

	return result
}
