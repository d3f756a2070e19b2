package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger_ReturnsSameHandle(t *testing.T) {
	a := GetLogger("same")
	b := GetLogger("same")
	assert.Same(t, a, b)
	assert.NotSame(t, a, GetLogger("other"))
}

func TestFormat_PrefixAndFields(t *testing.T) {
	DisableLogColor()
	h := GetLogger("fmt")
	var buf bytes.Buffer
	h.SetOutput(&buf)

	h.WithField("zeta", 1).WithField("alpha", "x").Info("sorted\n")
	line := buf.String()

	want := fmt.Sprintf("fmt[%d] <INFO>: sorted alpha=x zeta=1\n", os.Getpid())
	assert.True(t, strings.HasSuffix(line, want), "got %q", line)
	assert.Equal(t, 1, strings.Count(line, "\n"))
}

func TestFormat_Colour(t *testing.T) {
	h := &Handle{Logger: logrus.New(), name: "c"}
	h.colorful.Store(true)
	out, err := h.Format(&logrus.Entry{Level: logrus.WarnLevel, Message: "careful"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "\x1b[1;33mWARNING\x1b[0m")

	out, err = h.Format(&logrus.Entry{Level: logrus.ErrorLevel, Message: "boom"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "\x1b[1;31mERROR")

	h.colorful.Store(false)
	out, err = h.Format(&logrus.Entry{Level: logrus.WarnLevel, Message: "careful"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\x1b[")
}

func TestDisableLogColor_WhileLogging(t *testing.T) {
	h := GetLogger("concurrent")
	h.colorful.Store(true)
	h.SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Info("sorting")
			}
		}()
	}
	DisableLogColor()
	wg.Wait()

	out, err := h.Format(&logrus.Entry{Level: logrus.InfoLevel, Message: "done"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\x1b[")
}

func TestSetLogLevel_AppliesToAll(t *testing.T) {
	a := GetLogger("lvl-a")
	SetLogLevel(logrus.DebugLevel)
	b := GetLogger("lvl-b")
	assert.Equal(t, logrus.DebugLevel, a.GetLevel())
	assert.Equal(t, logrus.DebugLevel, b.GetLevel())

	SetLogLevel(logrus.WarnLevel)
	var buf bytes.Buffer
	a.SetOutput(&buf)
	a.Info("hidden")
	assert.Empty(t, buf.String())

	SetLogLevel(logrus.InfoLevel)
}
