package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestLogger_SilentByDefault(t *testing.T) {
	defer resetLogger()
	buf := new(bytes.Buffer)
	SetOutput(buf)

	Debug("should not appear")
	Info("should not appear")
	Section("should not appear")

	assert.Equal(t, "", buf.String())
}

func TestLogger_DebugWhenVerbose(t *testing.T) {
	defer resetLogger()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Debug("query is %q", "duct")

	assert.Equal(t, "[DEBUG] query is \"duct\"\n", buf.String())
}

func TestLogger_InfoWhenVerbose(t *testing.T) {
	defer resetLogger()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Info("matched %d line(s)", 3)

	assert.Equal(t, "[INFO] matched 3 line(s)\n", buf.String())
}

func TestLogger_Section(t *testing.T) {
	defer resetLogger()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Section("Search Execution")

	assert.Equal(t, "\n=== Search Execution ===\n", buf.String())
}

func TestLogger_VerboseToggle(t *testing.T) {
	defer resetLogger()

	assert.False(t, Verbose())
	SetVerbose(true)
	assert.True(t, Verbose())
	SetVerbose(false)
	assert.False(t, Verbose())
}
