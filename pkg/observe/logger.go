package observe

import (
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timestampLayout = "2006-01-02T15-04-05.000"

	// frames between runtime.Caller in callerFields and the code that logged
	callerSkip = 3
)

// Logger writes JSON (or console) entries that carry the app name, zone and
// calling site. The sentry hook relies on those field names.
type Logger struct {
	appEnv  string
	appName string
	level   zap.AtomicLevel
	l       *zap.Logger
}

type LoggerOptions struct {
	Env string
	// Level is a zap level name; unknown names keep debug.
	Level string
	// Format is "json" or "console" and applies to the writers only.
	Format string
	// Hook, when set, always receives JSON lines whatever Format is.
	// SentryHook decodes them.
	Hook io.Writer
}

// NewZapLogger logs everything from debug up as JSON to writers, or to stdout when none are given.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	return NewZapLoggerWithOptions(appName, LoggerOptions{Level: "debug", Format: "json"}, writers...)
}

func NewZapLoggerWithOptions(appName string, opts LoggerOptions, writers ...io.Writer) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = timeEncoder(timestampLayout, time.UTC)

	var encoder zapcore.Encoder
	switch opts.Format {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	sinks := make([]zapcore.WriteSyncer, 0, max(len(writers), 1))
	for _, w := range writers {
		sinks = append(sinks, zapcore.AddSync(w))
	}
	if len(sinks) == 0 {
		sinks = append(sinks, os.Stdout)
	}

	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	if parsed, err := zapcore.ParseLevel(opts.Level); opts.Level != "" && err == nil {
		level.SetLevel(parsed)
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
	if opts.Hook != nil {
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(opts.Hook), level))
	}

	return &Logger{
		appEnv:  opts.Env,
		appName: appName,
		level:   level,
		l:       zap.New(core),
	}
}

func (l *Logger) Level() string {
	return l.level.Level().String()
}

// Stop flushes buffered entries.
func (l *Logger) Stop() error {
	return l.l.Sync()
}

// Error logs err as the message and attaches it with a stack trace.
func (l *Logger) Error(err error, fields ...map[string]any) {
	l.emit(zapcore.ErrorLevel, err.Error(), fields, zap.String("error", err.Error()), zap.Stack("stack"))
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.emit(zapcore.InfoLevel, msg, fields)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.emit(zapcore.WarnLevel, msg, fields)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.emit(zapcore.DebugLevel, msg, fields)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.emit(zapcore.FatalLevel, msg, fields)
}

// emit only reads the first fields map; the variadic form keeps call sites short.
func (l *Logger) emit(lvl zapcore.Level, msg string, fields []map[string]any, extra ...zap.Field) {
	ce := l.l.Check(lvl, msg)
	if ce == nil {
		return
	}

	out := make([]zap.Field, 0, 5+len(extra))
	out = append(out,
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
	)
	out = append(out, callerFields()...)
	out = append(out, extra...)
	if len(fields) > 0 {
		for k, v := range fields[0] {
			out = append(out, zap.Any(k, v))
		}
	}

	ce.Write(out...)
}

func callerFields() []zap.Field {
	pc, file, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return []zap.Field{
			zap.String("caller_file", "not_defined"),
			zap.Int("caller_line", 0),
			zap.String("caller_func", "not_defined"),
		}
	}

	funcName := "not_defined"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return []zap.Field{
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	}
}

func timeEncoder(layout string, location *time.Location) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(location).Format(layout))
	}
}
