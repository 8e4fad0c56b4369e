package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-jojoo/sharebutton/internal/adapter/storage/memory"
	"github.com/its-jojoo/sharebutton/internal/api"
	"github.com/its-jojoo/sharebutton/internal/core"
	"github.com/its-jojoo/sharebutton/internal/logutil"
	"github.com/its-jojoo/sharebutton/internal/usecase/share"
)

func startTarget(t *testing.T) string {
	t.Helper()

	srv := httptest.NewUnstartedServer(nil)
	base := "http://" + srv.Listener.Addr().String()
	s := api.NewServer(share.New(memory.New(), logutil.Discard), core.ShareTarget{
		Name:     "CLI Test",
		Icon:     "icon.png",
		Endpoint: base + "/api/share",
	}, logutil.Discard)
	srv.Config.Handler = s.Router()
	srv.Start()
	t.Cleanup(srv.Close)
	return base
}

func runCtl(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCtl_ShareListExport(t *testing.T) {
	base := startTarget(t)

	out, err := runCtl(t, "--url", base, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "CLI Test")
	assert.Contains(t, out, base+"/api/share")

	out, err = runCtl(t, "--url", base, "share", "https://example.com/article")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 [url]")

	out, err = runCtl(t, "--url", base, "share", "--type", "note", "buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "#2 [note]")

	out, err = runCtl(t, "--url", base, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[url] https://example.com/article")
	assert.Contains(t, out, "[note] buy milk")

	out, err = runCtl(t, "--url", base, "list", "-q", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "buy milk")
	assert.NotContains(t, out, "example.com")

	path := filepath.Join(t.TempDir(), "export.json")
	out, err = runCtl(t, "--url", base, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 2 shares")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var items []core.SharedItem
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "buy milk", items[1].Content)
	assert.Equal(t, "note", items[1].TypeLabel())
}

func TestCtl_ShareRejectsBlank(t *testing.T) {
	base := startTarget(t)

	_, err := runCtl(t, "--url", base, "share", "   ")
	assert.ErrorContains(t, err, "nothing to share")
}

func TestCtl_ListEmpty(t *testing.T) {
	base := startTarget(t)

	out, err := runCtl(t, "--url", base, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview(" a\nb ", 10))
	assert.Equal(t, "héll…", preview("héllo world", 5))
}
