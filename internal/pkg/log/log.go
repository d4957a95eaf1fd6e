package log

import (
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *otelzap.Logger
)

// SetupLogger builds the zap production logger at the given level; unknown levels fall back to info.
func SetupLogger(level ...string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if len(level) > 0 && level[0] != "" {
		if lvl, err := zapcore.ParseLevel(level[0]); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func Setup(level ...string) *otelzap.Logger {
	z := SetupLogger(level...)
	return otelzap.New(z, otelzap.WithMinLevel(z.Level()), otelzap.WithTraceIDField(true))
}

func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = otelzap.New(l, otelzap.WithMinLevel(l.Level()), otelzap.WithTraceIDField(true))
}

func GetLogger() *otelzap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if logger == nil {
		return otelzap.New(zap.NewNop())
	}
	return logger
}
