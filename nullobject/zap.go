package nullobject

import "go.uber.org/zap"

// ZapLogger adapts a go.uber.org/zap logger to the Logger interface.
//
// zap's API (strongly typed fields, leveled methods) does not match the
// small Logger contract the demos use, so this type translates between
// them. It also shows the pattern one level down: zap itself ships
// zap.NewNop(), a null object logger, for exactly the same reason
// NopLogger exists here.
//
// Example usage:
//
//	z, _ := zap.NewProduction()
//	defer z.Sync()
//	trail := nullobject.NewAuditTrail(nullobject.NewZapLogger(z))
type ZapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps a zap logger. A nil argument yields a logger backed
// by zap.NewNop, keeping the no-nil-checks guarantee intact.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{l: l}
}

// Debug forwards to zap at debug level.
func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.l.Debug(msg, zapFields(fields)...)
}

// Info forwards to zap at info level.
func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.l.Info(msg, zapFields(fields)...)
}

// Error forwards to zap at error level.
func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.l.Error(msg, zapFields(fields)...)
}

func zapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
