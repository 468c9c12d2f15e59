package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWritesStructuredLine(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New("payment-gateway", "DEBUG", buf)

	l.Info("ledger", "charge created", "Create", "42")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "charge created", entry["msg"])
	assert.Equal(t, "payment-gateway", entry["service"])
	assert.Equal(t, "ledger", entry["context"])
	assert.Equal(t, "Create", entry["scope"])
	assert.Equal(t, "42", entry["meta"])
}

func TestErrorLevelSuppressesInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New("payment-gateway", "ERROR", buf)

	l.Info("ledger", "hidden", "Create", "")
	assert.Zero(t, buf.Len())

	l.Error("ledger", "visible", "Create", "")
	assert.Contains(t, buf.String(), "visible")
}

func TestZeroLogIsSafe(t *testing.T) {
	var l Log
	assert.NotPanics(t, func() {
		l.Info("ctx", "msg", "scope", "")
		l.Error("ctx", "msg", "scope", "")
	})
}
