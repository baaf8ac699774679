package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/storecraft/internal/config"
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/sections"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/testutils"
)

func newTestServer(t *testing.T) (*PreviewServer, *httptest.Server) {
	t.Helper()

	cfg := testutils.CreateTestConfig(t, filepath.Join(t.TempDir(), config.DefaultStorePath))

	s := New(cfg, sections.NewRegistry(), nil)
	s.SetStore(store.Default())

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(raw)
}

func TestHandleIndex(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "Welcome to Demo Store")
	assert.Contains(t, body, `src="main.js"`)
	assert.Contains(t, body, `src="preview.js"`)
	assert.Contains(t, body, "style=")
}

func TestHandleIndex_MatchesStaticSummary(t *testing.T) {
	s, ts := newTestServer(t)

	_, body := get(t, ts.URL+"/")
	served, err := node.SummarizeHTML(body)
	require.NoError(t, err)

	bundle, err := s.pack(context.Background(), store.Default())
	require.NoError(t, err)
	static, err := node.SummarizeHTML(bundle.Files["index.html"])
	require.NoError(t, err)

	assert.Equal(t, static, served)
}

func TestHandlePage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/our-story.html")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `data-section="page"`)

	resp, _ = get(t, ts.URL+"/missing.html")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleAssets(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/styles.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Contains(t, body, "--primary-color")

	resp, body = get(t, ts.URL+"/main.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "data-faq-toggle")

	resp, body = get(t, ts.URL+"/preview.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "/ws")
}

func TestHandlePlan(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/plan")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plan PlanResponse
	require.NoError(t, json.Unmarshal([]byte(body), &plan))

	assert.Equal(t, "Demo Store", plan.Store)
	assert.Equal(t, "modern", plan.Theme)
	assert.Equal(t, []string{"our-story.html", "shop.html"}, plan.Pages)
	require.NotEmpty(t, plan.Steps)
	assert.Equal(t, store.SectionHeader, plan.Steps[0].Key)
	assert.Equal(t, store.SectionFooter, plan.Steps[len(plan.Steps)-1].Key)
}

func TestHandleTemplatesAndThemes(t *testing.T) {
	_, ts := newTestServer(t)

	_, body := get(t, ts.URL+"/api/templates")
	var templates []TemplateInfo
	require.NoError(t, json.Unmarshal([]byte(body), &templates))

	defaults := map[store.SectionKey]string{}
	for _, tpl := range templates {
		if tpl.Default {
			defaults[tpl.Kind] = tpl.ID
		}
	}
	assert.Equal(t, "classic", defaults[store.SectionHeader])
	assert.Equal(t, "accordion", defaults[store.SectionFAQ])

	_, body = get(t, ts.URL+"/api/themes")
	var themes []ThemeInfo
	require.NoError(t, json.Unmarshal([]byte(body), &themes))
	require.NotEmpty(t, themes)
	assert.Equal(t, "modern", themes[0].ID)
}

func TestHandleExport(t *testing.T) {
	s, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/export/sitemap.xml")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<urlset")

	resp, _ = get(t, ts.URL+"/export/nope.txt")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cfg := store.Default()
	cfg.Pages = append(cfg.Pages, cfg.Pages[0])
	s.SetStore(cfg)

	resp, body = get(t, ts.URL+"/export/index.html")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "SLUG_CONFLICT")
}

func TestHandleHealth(t *testing.T) {
	s, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "Demo Store", health.Store)

	// Store file does not exist: the previous store stays in service.
	require.Error(t, s.Reload(context.Background()))

	_, body = get(t, ts.URL+"/health")
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "degraded", health.Status)
	assert.NotEmpty(t, health.Error)

	resp, _ = get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNoStoreLoaded(t *testing.T) {
	s := New(config.Default(), sections.NewRegistry(), nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	s, ts := newTestServer(t)
	s.config.Server.AllowedOrigins = []string{"http://localhost:3000"}

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/plan", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://evil.test")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWebSocket_RejectsForeignOrigin(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/ws", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://evil.test")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestWebSocket_ReloadOnStoreChange(t *testing.T) {
	s, ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{ts.URL}},
	})
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return s.hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	testutils.WriteStore(t, filepath.Dir(s.config.Store.Path), store.Default())
	require.NoError(t, s.Reload(ctx))

	_, raw, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg UpdateMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, MessageReload, msg.Type)
}

func TestStart_ListenFailureStopsWatcher(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	dir, storePath := testutils.CreateTempProject(t)
	cfg := testutils.CreateTestConfig(t, storePath)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = busy.Addr().(*net.TCPAddr).Port
	cfg.Development.HotReload = true

	s := New(cfg, sections.NewRegistry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = s.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")

	require.NotNil(t, s.watcher)
	assert.Error(t, s.watcher.AddPath(dir), "watcher should be closed")
	assert.False(t, s.hub.add(&Client{send: make(chan []byte, 1)}), "hub should be closed")
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(nil)
	c := &Client{send: make(chan []byte, 1)}
	require.True(t, hub.add(c))

	hub.Close()

	_, open := <-c.send
	assert.False(t, open)
	assert.False(t, hub.add(&Client{send: make(chan []byte, 1)}))
	assert.Zero(t, hub.Count())
}

func TestHub_DropsSlowClients(t *testing.T) {
	hub := NewHub(nil)
	c := &Client{send: make(chan []byte, 1)}
	require.True(t, hub.add(c))

	hub.Broadcast(context.Background(), UpdateMessage{Type: MessageReload})
	hub.Broadcast(context.Background(), UpdateMessage{Type: MessageReload})

	assert.Zero(t, hub.Count())
}
