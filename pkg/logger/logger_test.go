package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("warn", &buf)

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.WithField("household_id", 7).Warn("visible")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, float64(7), entry["household_id"])
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("loud", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
