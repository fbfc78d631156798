package datepicker

import (
	"context"
	"log/slog"
	"time"
)

// ParseHook observes parses performed by a Picker. Hooks may rewrite the
// input in BeforeParse and the result in AfterParse.
type ParseHook interface {
	BeforeParse(ctx *ParseHookContext)
	AfterParse(ctx *ParseHookContext)
}

type ParseHookContext struct {
	Input    string
	Pattern  string
	Base     time.Time
	Result   ParseResult
	Metadata map[string]any
}

func (ctx *ParseHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *ParseHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type ParseHookFuncs struct {
	Before func(ctx *ParseHookContext)
	After  func(ctx *ParseHookContext)
}

func (h ParseHookFuncs) BeforeParse(ctx *ParseHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ParseHookFuncs) AfterParse(ctx *ParseHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// ParseFunc matches the signature of Parse
type ParseFunc func(input string, f *Format, base time.Time) ParseResult

// WrapParseWithHooks returns next decorated with hooks. Nil hooks are
// dropped; with no hooks left next is returned unchanged.
func WrapParseWithHooks(next ParseFunc, hooks ...ParseHook) ParseFunc {
	if next == nil {
		next = Parse
	}

	filtered := make([]ParseHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook != nil {
			filtered = append(filtered, hook)
		}
	}
	if len(filtered) == 0 {
		return next
	}

	return func(input string, f *Format, base time.Time) ParseResult {
		ctx := &ParseHookContext{
			Input:   input,
			Pattern: f.Pattern(),
			Base:    base,
		}

		for _, hook := range filtered {
			hook.BeforeParse(ctx)
		}

		ctx.Result = next(ctx.Input, f, ctx.Base)

		for _, hook := range filtered {
			hook.AfterParse(ctx)
		}

		return ctx.Result
	}
}

// NewLoggingHook logs every parse outcome to logger: successes at debug
// level, failures at info level.
func NewLoggingHook(logger *slog.Logger) ParseHook {
	if logger == nil {
		return nil
	}

	return ParseHookFuncs{
		After: func(ctx *ParseHookContext) {
			attrs := []slog.Attr{
				slog.String("input", ctx.Input),
				slog.String("pattern", ctx.Pattern),
				slog.Bool("valid", ctx.Result.Valid),
			}

			if ctx.Result.Valid {
				attrs = append(attrs, slog.Time("date", ctx.Result.Date))
				logger.LogAttrs(context.Background(), slog.LevelDebug, "date parsed", attrs...)
				return
			}

			if ctx.Result.MissingPunctuation != "" {
				attrs = append(attrs, slog.String("missing_punctuation", ctx.Result.MissingPunctuation))
			}
			logger.LogAttrs(context.Background(), slog.LevelInfo, "date rejected", attrs...)
		},
	}
}
