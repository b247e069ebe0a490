package logging

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// callerHooker tags error and above entries with the calling function, file
// and line. Lower levels stay compact.
type callerHooker struct{}

// logPackages are frames skipped while looking for the caller.
var logPackages = []string{"github.com/sirupsen/logrus", "massnet.org/shadigest/logging"}

func (h *callerHooker) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isLogFrame(frame) {
			fname := frame.Function
			if i := strings.LastIndex(fname, "/"); i >= 0 {
				fname = fname[i+1:]
			}
			entry.Data["func"] = fname
			entry.Data["file"] = filepath.Base(frame.File)
			entry.Data["line"] = frame.Line
			return nil
		}
		if !more {
			return nil
		}
	}
}

func (h *callerHooker) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}
}

func isLogFrame(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}
	for _, pkg := range logPackages {
		if strings.HasPrefix(frame.Function, pkg+".") || strings.HasPrefix(frame.Function, pkg+"/") {
			return true
		}
	}
	return false
}
