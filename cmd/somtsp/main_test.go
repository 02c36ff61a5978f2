package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/internal/config"
)

func TestRun_PrintsReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-cities", "6", "-epochs", "15", "-seed", "3", "-polish"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "15/15")
	require.Contains(t, out, "Tour (polished):")
	require.Contains(t, stderr.String(), "run finished")
}

func TestRun_WithServer(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-cities", "4", "-epochs", "5", "-addr", "127.0.0.1:0"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "Tour (ring):")
	require.Contains(t, stderr.String(), "http server listening")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-cities", "5", "-epochs", "1000"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "0/1000")
	require.Contains(t, stderr.String(), "run interrupted")
}

func TestRun_BadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.ErrorIs(t, run(context.Background(), []string{"-h"}, &stdout, &stderr), flag.ErrHelp)
	require.Error(t, run(context.Background(), []string{"-epochs", "x"}, &stdout, &stderr))
	require.Error(t, run(context.Background(), []string{"-rate", "0"}, &stdout, &stderr))
	require.Error(t, run(context.Background(), []string{"-addr", "256.0.0.1:bad", "-epochs", "1"}, &stdout, &stderr))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "somtsp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  epochs: 50\n  cities: 9\n  seed: 4\n"), 0o600))
	t.Setenv(config.EnvPrefix+"RUN_EPOCHS", "60")

	var stderr bytes.Buffer
	cfg, err := loadConfig([]string{"-config", path, "-seed", "8"}, &stderr)
	require.NoError(t, err)
	require.Equal(t, 60, cfg.Run.Epochs) // env over file
	require.Equal(t, 9, cfg.Run.Cities)  // file over default
	require.Equal(t, int64(8), cfg.Run.Seed)

	cfg, err = loadConfig([]string{"-config", path, "-epochs", "7"}, &stderr)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Run.Epochs) // flag over env
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config.Log{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = newLogger(config.Log{Level: "loud", Format: "text"}, &buf)
	require.Error(t, err)
}
