package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-jdate"
)

// NewLogger builds the CLI logger. Output goes to stderr so rendered values on
// stdout stay clean.
func NewLogger(cfg LoggerConfig) (*zap.Logger, error) {
	var zapConfig zap.Config

	if cfg.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// LogHook logs every render at debug level.
func LogHook(logger *zap.Logger) jdate.FormatHook {
	return jdate.FormatHookFuncs{
		After: func(ctx *jdate.FormatHookContext) {
			ce := logger.Check(zap.DebugLevel, "rendered")
			if ce == nil {
				return
			}

			fields := []zap.Field{
				zap.String("vocabulary", string(ctx.Vocabulary)),
				zap.String("pattern", ctx.Pattern),
				zap.Int64("epoch", ctx.Epoch),
				zap.Stringer("script", ctx.Script),
				zap.String("result", ctx.Result),
			}
			if ctx.Location != nil {
				fields = append(fields, zap.String("timezone", ctx.Location.String()))
			}
			if unknown := ctx.UnknownSpecifiers(); len(unknown) > 0 {
				fields = append(fields, zap.Strings("unknown_specifiers", unknown))
			}
			ce.Write(fields...)
		},
	}
}
