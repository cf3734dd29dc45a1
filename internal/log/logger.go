// Package log sets up the process-wide slog logger.
//
// Console output is a compact one-line text format (or JSON); when a file is configured
// records are additionally written as JSON to a rotating log file.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/philipparndt/gogeo/version"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
// Environment variables (see FromEnv):
//   - GOGEO_LOG_LEVEL=debug|info|warn|error
//   - GOGEO_LOG_FORMAT=console|json
//   - GOGEO_LOG_FILE=<path> (rotated JSON log)
//   - GOGEO_LOG_SOURCE=true|false
type Options struct {
	Level     string
	Format    string // "console" or "json"
	AddSource bool
	File      string
	Output    io.Writer // console destination, stderr when nil
}

const (
	EnvLevel  = "GOGEO_LOG_LEVEL"
	EnvFormat = "GOGEO_LOG_FORMAT"
	EnvFile   = "GOGEO_LOG_FILE"
	EnvSource = "GOGEO_LOG_SOURCE"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *slog.Logger
	fileWriter    *lj.Logger
)

// L returns the application logger, initializing it from the environment on first use
func L() *slog.Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Init configures the application logger and installs it as slog.Default
func Init(opts Options) {
	logger, fw := build(opts)

	defaultMu.Lock()
	if fileWriter != nil {
		_ = fileWriter.Close()
	}
	defaultLogger = logger
	fileWriter = fw
	defaultMu.Unlock()
	slog.SetDefault(logger)
}

// New builds a logger from opts without touching the process-wide default
func New(opts Options) *slog.Logger {
	l, _ := build(opts)
	return l
}

func build(opts Options) (*slog.Logger, *lj.Logger) {
	lvl := ParseLevel(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var handlers []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handlers = append(handlers, slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}))
	} else {
		handlers = append(handlers, &consoleHandler{level: lvl, addSource: opts.AddSource, w: out, mu: &sync.Mutex{}})
	}

	var fw *lj.Logger
	if path := strings.TrimSpace(opts.File); path != "" {
		fw = &lj.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}))
	}

	var h slog.Handler = handlers[0]
	if len(handlers) > 1 {
		h = fanout(handlers)
	}

	return slog.New(h).With(slog.String("app", "gogeo"), slog.String("ver", version.GetVersion())), fw
}

// Close flushes and closes the rotating log file, if one is open
func Close() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// FromEnv builds Options from the GOGEO_LOG_* variables
func FromEnv() Options {
	return Options{
		Level:     getenv(EnvLevel, "info"),
		Format:    getenv(EnvFormat, "console"),
		AddSource: strings.EqualFold(getenv(EnvSource, "false"), "true"),
		File:      os.Getenv(EnvFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WithComponent returns the application logger tagged with a component name
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

// ParseLevel converts a level name to slog.Level; unknown names map to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type multi []slog.Handler

func fanout(hs []slog.Handler) slog.Handler { return multi(hs) }

func (m multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make(multi, len(m))
	for i, h := range m {
		res[i] = h.WithAttrs(attrs)
	}
	return res
}

func (m multi) WithGroup(name string) slog.Handler {
	res := make(multi, len(m))
	for i, h := range m {
		res[i] = h.WithGroup(name)
	}
	return res
}

// consoleHandler prints "time LVL message key=value ..." lines
type consoleHandler struct {
	level     slog.Level
	addSource bool
	w         io.Writer
	mu        *sync.Mutex
	attrs     []slog.Attr
	prefix    string
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteString(" ")
	b.WriteString(levelString(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, h.prefix, a)
		return true
	})

	if h.addSource {
		if src := r.Source(); src != nil {
			b.WriteString(" src=")
			b.WriteString(src.File)
			b.WriteString(":")
			b.WriteString(strconv.Itoa(src.Line))
		}
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteString(" ")
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteString("=")
	b.WriteString(valueString(a.Value.Resolve()))
}

func levelString(l slog.Level) string {
	switch l {
	case slog.LevelDebug:
		return "DBG"
	case slog.LevelInfo:
		return "INF"
	case slog.LevelWarn:
		return "WRN"
	case slog.LevelError:
		return "ERR"
	default:
		return l.String()
	}
}

func valueString(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " =\"") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	default:
		return v.String()
	}
}
