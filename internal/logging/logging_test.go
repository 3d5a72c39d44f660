package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerSuppressesBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Warn)

	l.Infof("should not appear")
	l.Warnf("chat %d provisioned", 7)

	out := buf.String()
	require.NotContains(t, out, "should not appear")
	require.Contains(t, out, "WARN: chat 7 provisioned")
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	require.Equal(t, Info, ParseLevel("bogus"))
	require.Equal(t, Debug, ParseLevel("debug"))
}
