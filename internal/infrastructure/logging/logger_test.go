package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure("info", "text", os.Stderr) })

	var buf bytes.Buffer
	logger := Configure("debug", "json", &buf)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	Component("seed").WithField(FieldEntity, "contact").Debug("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "seed", entry[FieldComponent])
	assert.Equal(t, "contact", entry[FieldEntity])
	assert.Equal(t, "loaded", entry["msg"])
}

func TestConfigure_InvalidLevel(t *testing.T) {
	t.Cleanup(func() { Configure("info", "text", os.Stderr) })

	var buf bytes.Buffer
	logger := Configure("chatty", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
