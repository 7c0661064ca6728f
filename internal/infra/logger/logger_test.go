package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "prod").Info("order submitted", "order_id", "o1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "supplyhub", rec["service"])
	assert.Equal(t, "o1", rec["order_id"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNewWithWriter_DebugOnlyInDev(t *testing.T) {
	var prod, dev bytes.Buffer
	NewWithWriter(&prod, "prod").Debug("hidden")
	NewWithWriter(&dev, "dev").Debug("shown")

	assert.Empty(t, prod.String())
	assert.Contains(t, dev.String(), "shown")
}
