// Package logger hands out named logrus loggers that share one level and
// one colour setting, for the lvsort command line.
package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var mu sync.Mutex

var (
	handles  = make(map[string]*Handle)
	level    = logrus.InfoLevel
	colorful = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

const timeLayout = "2006/01/02 15:04:05.000000"

// Handle is a logrus.Logger that prefixes every line with its name and pid.
type Handle struct {
	*logrus.Logger

	name     string
	colorful atomic.Bool
}

// Format renders one entry as "<time> <name>[<pid>] <level>: <msg> [k=v ...]".
func (h *Handle) Format(e *logrus.Entry) ([]byte, error) {
	lvl := strings.ToUpper(e.Level.String())
	if h.colorful.Load() {
		lvl = levelColor(e.Level).Sprint(lvl)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[%d] <%s>: %s",
		e.Time.Format(timeLayout), h.name, os.Getpid(), lvl, strings.TrimSuffix(e.Message, "\n"))
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// Level colours ignore color.NoColor, which follows stdout; logs go to stderr.
var (
	debugColor = forced(color.FgBlue)
	infoColor  = forced(color.FgGreen)
	warnColor  = forced(color.FgYellow)
	errorColor = forced(color.FgRed)
)

func forced(fg color.Attribute) *color.Color {
	c := color.New(color.Bold, fg)
	c.EnableColor()

	return c
}

func levelColor(l logrus.Level) *color.Color {
	switch l {
	case logrus.DebugLevel, logrus.TraceLevel:
		return debugColor
	case logrus.WarnLevel:
		return warnColor
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return errorColor
	default:
		return infoColor
	}
}

func newHandle(name string) *Handle {
	h := &Handle{Logger: logrus.New(), name: name}
	h.colorful.Store(colorful)
	h.Formatter = h
	h.SetLevel(level)
	h.SetOutput(os.Stderr)

	return h
}

// GetLogger returns the logger registered under name, creating it on first use.
func GetLogger(name string) *Handle {
	mu.Lock()
	defer mu.Unlock()
	if h, ok := handles[name]; ok {
		return h
	}
	h := newHandle(name)
	handles[name] = h

	return h
}

// SetLogLevel changes the level of every logger, current and future.
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	for _, h := range handles {
		h.SetLevel(lvl)
	}
}

// DisableLogColor turns off ANSI colours for every logger.
func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	colorful = false
	for _, h := range handles {
		h.colorful.Store(false)
	}
}
