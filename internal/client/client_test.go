package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-jojoo/sharebutton/internal/adapter/storage/memory"
	"github.com/its-jojoo/sharebutton/internal/api"
	"github.com/its-jojoo/sharebutton/internal/core"
	"github.com/its-jojoo/sharebutton/internal/logutil"
	"github.com/its-jojoo/sharebutton/internal/usecase/share"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewUnstartedServer(nil)
	target := core.ShareTarget{
		Name:     "Test List",
		Icon:     "icon.png",
		Endpoint: "http://" + srv.Listener.Addr().String() + "/api/share",
	}
	s := api.NewServer(share.New(memory.New(), logutil.Discard), target, logutil.Discard)
	srv.Config.Handler = s.Router()
	srv.Start()

	t.Cleanup(srv.Close)
	return srv
}

func TestRoundTrip(t *testing.T) {
	srv := startServer(t)
	c := New(0)
	ctx := context.Background()

	target, err := c.FetchConfig(ctx, ConfigURL(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "Test List", target.Name)
	assert.Equal(t, srv.URL+"/api/share", target.Endpoint)

	id, err := c.PostShare(ctx, target.Endpoint,
		core.NewShareRequest("from the client", core.ContentTypeText, json.RawMessage(`1704067200000`)))
	require.NoError(t, err)
	assert.Positive(t, id)

	items, err := c.ListShares(ctx, SharesURL(srv.URL+"/"))
	require.NoError(t, err)
	require.NotEmpty(t, items)
	last := items[len(items)-1]
	assert.Equal(t, id, last.ID)
	assert.Equal(t, "from the client", last.Content)
	assert.Equal(t, "text", last.TypeLabel())
}

func TestPostShare_ServerRejects(t *testing.T) {
	srv := startServer(t)
	_, err := New(0).PostShare(context.Background(), srv.URL+"/api/share", core.NewShareRequest("", "", nil))

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "Content is required", se.Message)
}

func TestFetchConfig_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"icon":"x"}`))
	}))
	defer srv.Close()

	url := srv.URL + "/custom/config"
	target, err := New(0).FetchConfig(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "Custom Share", target.Name)
	assert.Equal(t, url, target.Endpoint)
}

func TestFetchConfig_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(0).FetchConfig(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "HTTP 503: nope")
}
