package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	testLogger := NewJSONHandler(&buf, nil)
	log = New(testLogger)

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	testLogger := NewJSONHandler(&buf, nil)
	log = New(testLogger)

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	testLogger := NewJSONHandler(&buf, opts)
	log = New(testLogger)

	Debug("test debug")

	assert.Contains(t, buf.String(), "test debug")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	testLogger := NewJSONHandler(&buf, nil)
	log = New(testLogger)

	Infof("test %s", "formatted")

	assert.Contains(t, buf.String(), "formatted")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	testLogger := NewJSONHandler(&buf, nil)
	log = New(testLogger)

	Errorf("test %s", "error")

	assert.Contains(t, buf.String(), "error")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	testLogger := NewJSONHandler(&buf, nil)
	log = New(testLogger)

	logger := WithError(assert.AnError)
	logger.Info("test with error")

	output := buf.String()
	assert.Contains(t, output, "test with error")
	assert.Contains(t, output, "error")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	testLogger := NewJSONHandler(&buf, nil)
	log = New(testLogger)

	logger := WithFields(map[string]interface{}{
		"class_id": "abc",
		"count":    3,
	})
	logger.Info("test with fields")

	output := buf.String()
	assert.Contains(t, output, "test with fields")
	assert.Contains(t, output, "class_id")
	assert.Contains(t, output, "abc")
}
