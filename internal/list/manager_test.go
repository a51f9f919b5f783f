package list

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftup/swiftup/internal/config"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/index"
	"github.com/swiftup/swiftup/internal/logger"
)

func tagServer(t *testing.T, tags []string) *index.Client {
	t.Helper()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			fmt.Fprint(w, "[]")
			return
		}
		out := make([]index.Tag, 0, len(tags))
		for _, name := range tags {
			out = append(out, index.Tag{Name: name})
		}
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	t.Cleanup(srv.Close)

	conf := config.Config{
		TagsURL:      srv.URL,
		PageSize:     100,
		PageParam:    "page",
		PerPageParam: "per_page",
		ResolveLimit: 100,
	}
	return index.New(&conf, srv.Client())
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Configure(logger.Options{Level: "error", Out: &buf})
	t.Cleanup(logger.UseTestMode)
	return &buf
}

func TestListInstalled(t *testing.T) {
	out := captureOutput(t)
	cfg := &globalconfig.PersistentConfig{}
	cfg.Add("5.6.0")
	cfg.Add("5.7.0")
	cfg.Add("main-snapshot-2022-09-12")
	cfg.InUse = "5.7.0"

	l := New(cfg, tagServer(t, nil))
	require.NoError(t, l.Execute(context.Background(), false, 0))

	got := out.String()
	assert.Contains(t, got, "5.7.0")
	assert.Contains(t, got, "5.6.0")
	assert.Contains(t, got, "main-snapshot-2022-09-12")
	assert.Contains(t, got, "in use")
	assert.Contains(t, got, "snapshot")

	// releases sort newest first, ahead of snapshots
	assert.Less(t, strings.Index(got, "5.7.0"), strings.Index(got, "5.6.0"))
}

func TestListAvailableMarksInstalled(t *testing.T) {
	out := captureOutput(t)
	cfg := &globalconfig.PersistentConfig{}
	cfg.Add("5.6.0")

	l := New(cfg, tagServer(t, []string{
		"swift-5.6.0-RELEASE",
		"swift-5.7.0-RELEASE",
		"main-snapshot-2022-09-12", // snapshots stay out of the release listing
	}))
	require.NoError(t, l.Execute(context.Background(), true, 20))

	got := out.String()
	assert.Contains(t, got, "5.7.0")
	assert.Contains(t, got, "available")
	assert.Contains(t, got, "installed")
	assert.NotContains(t, got, "main-snapshot")
}
