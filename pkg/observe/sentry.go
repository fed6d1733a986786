package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer that forwards error-level zap entries to Sentry.
// Pass it as LoggerOptions.Hook so it is fed JSON in every log format. Only
// production and staging entries are sent.
type SentryHook struct {
	appZone string
	appName string
}

// logEntry is the subset of a Logger JSON line the hook reads.
type logEntry struct {
	Level      string `json:"level"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Stack      string `json:"stack"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Timestamp  string `json:"timestamp"`
}

func NewSentryHook(appZone, appName string, maxErrorDepth int, isDebug bool, dsn string) *SentryHook {
	if dsn == "" {
		log.Println("sentry: no DSN, events will be dropped")
	}
	if maxErrorDepth <= 0 {
		maxErrorDepth = _sentryMaxErrorDepth
	}

	transport := sentry.NewHTTPTransport()
	transport.Timeout = _sentryServerRequestTimeout

	err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appZone,
		MaxErrorDepth:    maxErrorDepth,
		ServerName:       appName,
		Transport:        transport,
	})
	if err != nil {
		log.Println("sentry: init failed:", err.Error())
	}

	return &SentryHook{
		appZone: appZone,
		appName: appName,
	}
}

func (h *SentryHook) reports() bool {
	return h.appZone == "production" || h.appZone == "staging"
}

// Write never fails: a line the hook cannot read is dropped.
func (h *SentryHook) Write(p []byte) (int, error) {
	if !h.reports() {
		return len(p), nil
	}

	var entry logEntry
	if err := json.Unmarshal(p, &entry); err != nil {
		h.report(errors.Wrap(err, "sentry hook: decode entry"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(entry.Level)
	if err != nil {
		h.report(errors.Wrap(err, "sentry hook: parse level"))
		return len(p), nil
	}

	if entry.Message != "" && level >= zapcore.ErrorLevel {
		sentry.CaptureEvent(h.toEvent(entry, level))
	}

	return len(p), nil
}

func (h *SentryHook) toEvent(entry logEntry, level zapcore.Level) *sentry.Event {
	timestamp, _ := time.ParseInLocation(timestampLayout, entry.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Environment = h.appZone
	event.Level = sentryLevel(level)
	event.Timestamp = timestamp
	event.Message = entry.Message
	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = entry.Error
	event.Extra["CallerFile"] = entry.CallerFile
	event.Extra["CallerLine"] = entry.CallerLine
	event.Extra["CallerFunc"] = entry.CallerFunc
	event.Extra["Stack"] = entry.Stack
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       entry.Message,
		Value:      entry.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

func sentryLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelDebug
	}
}

// report writes to the std logger: going through Logger would loop back into Write.
func (h *SentryHook) report(err error) {
	log.Println(err.Error())
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}
