package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	log := New(Options{Level: "debug", Env: "test"})
	require.Equal(t, logrus.DebugLevel, log.GetLevel())
	require.True(t, log.ReportCaller)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New(Options{Level: "loud", Env: "test"})
	require.Equal(t, logrus.InfoLevel, log.GetLevel())
}
