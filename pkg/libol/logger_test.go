package libol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	old := SetOutput(buf)
	defer SetOutput(old)
	level := Logger.Level
	defer func() { Logger.Level = level }()

	out := NewSubLogger("fake")
	SetLogger("", WARN)
	out.Debug("hidden %d", 1)
	out.Warn("shown %d", 2)
	Error("root %s", "error")
	assert.NotContains(t, buf.String(), "hidden", "be filtered.")
	assert.Contains(t, buf.String(), "WARN|fake|shown 2\n")
	assert.Contains(t, buf.String(), "ERROR|root|root error\n")

	SetLogger("", DEBUG)
	out.Debug("now %d", 3)
	assert.Contains(t, buf.String(), "DEBUG|fake|now 3\n")
}
