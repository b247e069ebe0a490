package logging

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

const (
	PANIC uint32 = iota
	FATAL
	ERROR
	WARN
	INFO
	DEBUG
	TRACE
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

var (
	mu sync.RWMutex
	// clog prints to the console and the log file, vlog only to the file.
	clog *logrus.Logger
	vlog *logrus.Logger
)

// ParseLevel converts a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// ValidLevel reports whether level is one of the level names.
func ValidLevel(level string) bool {
	switch level {
	case PanicLevel, FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel:
		return true
	}
	return false
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = ParseLevel(level)
	l.Hooks.Add(&callerHooker{})
	return l
}

// Init loggers. Log files go under path; console output goes to stderr
// unless disableCPrint is set.
func Init(path, filename string, level string, age uint32, disableCPrint bool) error {
	fileHooker, err := NewFileRotateHooker(path, filename, age, nil)
	if err != nil {
		return err
	}

	v := newLogger(ioutil.Discard, level)
	v.Hooks.Add(fileHooker)

	c := v
	if !disableCPrint {
		c = newLogger(os.Stderr, level)
		c.Hooks.Add(fileHooker)
	}

	mu.Lock()
	vlog, clog = v, c
	mu.Unlock()

	VPrint(INFO, "Logger Configuration.", LogFormat{"path": path, "level": level})
	return nil
}

// InitWriter routes both loggers to w without any log file.
func InitWriter(w io.Writer, level string) {
	l := newLogger(w, level)
	mu.Lock()
	vlog, clog = l, l
	mu.Unlock()
}

func loggers() (*logrus.Logger, *logrus.Logger) {
	mu.RLock()
	c, v := clog, vlog
	mu.RUnlock()
	if c == nil {
		InitWriter(os.Stderr, InfoLevel)
		return loggers()
	}
	return c, v
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into console + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	c, _ := loggers()
	output(c, level, msg, formats...)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	_, v := loggers()
	output(v, level, msg, formats...)
}

func output(l *logrus.Logger, level uint32, msg string, formats ...LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) logrus.Fields {
	format := logrus.Fields{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	format["tid"] = GetGID()
	return format
}
