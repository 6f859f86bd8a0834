package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObserved(t)
	ctx := context.Background()

	log.Debug(ctx, "d", "k", 1)
	log.Info(ctx, "i")
	log.Warn(ctx, "w")
	log.Error(ctx, "e")

	entries := logs.All()
	require.Len(t, entries, 4)
	require.Equal(t, "d", entries[0].Message)
	require.Equal(t, int64(1), entries[0].ContextMap()["k"])
	require.Equal(t, zap.ErrorLevel, entries[3].Level)
}

func TestZapLogger_With(t *testing.T) {
	log, logs := newObserved(t)

	child := log.With("component", "transport")
	child.Info(context.Background(), "request done", "status", 200)

	entries := logs.All()
	require.Len(t, entries, 1)
	m := entries[0].ContextMap()
	require.Equal(t, "transport", m["component"])
	require.Equal(t, int64(200), m["status"])
}

func TestNewConsole_VerboseTogglesDebug(t *testing.T) {
	// Just exercise construction paths; output goes to stderr.
	require.NotNil(t, NewConsole(false))
	require.NotNil(t, NewConsole(true))
}
