package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministry/internal/config"
	"ministry/internal/domain/material"
	"ministry/internal/utils/logger"
)

func testConfig(t *testing.T, seed bool) *config.Config {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := &config.Config{Env: config.EnvDev}
	cfg.Server.RunAddress = addr
	cfg.Upload.MaxFileSizeMB = 1
	cfg.Catalog.Seed = seed
	return cfg
}

func TestNew_Seed(t *testing.T) {
	ctx := context.Background()

	app, err := New(ctx, testConfig(t, true), logger.Discard())
	require.NoError(t, err)
	items, err := app.materials.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(material.Types))

	app, err = New(ctx, testConfig(t, false), logger.Discard())
	require.NoError(t, err)
	items, err = app.materials.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestApp_RunAndShutdown(t *testing.T) {
	cfg := testConfig(t, false)
	app, err := New(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Server.RunAddress + "/api/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
