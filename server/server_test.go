package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/TALS/config"
	"github.com/teranos/TALS/nta"
	"github.com/teranos/TALS/nta/autocomplete"
)

const testModelXML = `<nta>
  <declaration>int x; chan c;</declaration>
  <template>
    <name>Proc</name>
    <declaration>int y;</declaration>
    <location id="id0"><name>idle</name></location>
  </template>
  <system>P = Proc();</system>
</nta>`

func testServer(t *testing.T) *TALSServer {
	t.Helper()

	doc, diags, err := nta.ParseDocument([]byte(testModelXML))
	require.NoError(t, err)
	require.Empty(t, diags)

	repo := nta.NewRepository()
	repo.SetDocument(doc)

	cfg := &config.Config{}
	cfg.Server.Port = config.DefaultServerPort

	s, err := NewTALSServer(cfg, repo)
	require.NoError(t, err)
	return s
}

func TestNewTALSServerValidation(t *testing.T) {
	_, err := NewTALSServer(nil, nta.NewRepository())
	assert.Error(t, err)

	_, err = NewTALSServer(&config.Config{}, nil)
	assert.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.HandleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"ok"`)
	assert.Contains(t, body, `"model_loaded":true`)
	assert.Contains(t, body, `"templates":1`)
}

func TestHandleAutocomplete(t *testing.T) {
	s := testServer(t)

	body := `{"xpath":"/nta/declaration","offset":1000,"identifier":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/autocomplete", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.HandleAutocomplete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"name":"x","type":"variable"}`)
	assert.Contains(t, rec.Body.String(), `{"name":"c","type":"channel"}`)
}

func TestHandleAutocompleteErrors(t *testing.T) {
	s := testServer(t)

	// Wrong method
	req := httptest.NewRequest(http.MethodGet, "/api/autocomplete", nil)
	rec := httptest.NewRecorder()
	s.HandleAutocomplete(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	// Malformed body
	req = httptest.NewRequest(http.MethodPost, "/api/autocomplete", strings.NewReader("{"))
	rec = httptest.NewRecorder()
	s.HandleAutocomplete(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Invalid request (empty xpath)
	req = httptest.NewRequest(http.MethodPost, "/api/autocomplete", strings.NewReader(`{"xpath":""}`))
	rec = httptest.NewRecorder()
	s.HandleAutocomplete(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAutocompleteNoDocument(t *testing.T) {
	cfg := &config.Config{}
	s, err := NewTALSServer(cfg, nta.NewRepository())
	require.NoError(t, err)

	body := `{"xpath":"/nta/declaration","offset":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/autocomplete", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.HandleAutocomplete(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCheckOrigin(t *testing.T) {
	s := testServer(t)

	makeReq := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		return req
	}

	// No configured origins: localhost only
	assert.True(t, s.checkOrigin(makeReq("")))
	assert.True(t, s.checkOrigin(makeReq("http://localhost:3000")))
	assert.False(t, s.checkOrigin(makeReq("http://evil.example")))

	s.cfg.Server.AllowedOrigins = []string{"https://editor.example"}
	assert.True(t, s.checkOrigin(makeReq("https://editor.example:8443")))
	assert.False(t, s.checkOrigin(makeReq("http://localhost:3000")))
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/autocomplete", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebSocketCommands(t *testing.T) {
	s := testServer(t)
	go s.Run()
	defer s.Stop()

	ts := httptest.NewServer(s.mux)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// Autocomplete round-trip
	require.NoError(t, conn.WriteJSON(CommandMessage{
		Type:   "autocomplete",
		ID:     "req-1",
		XPath:  "/nta/declaration",
		Offset: 1000,
	}))

	var result CompletionResultMessage
	require.NoError(t, conn.ReadJSON(&result))
	assert.Equal(t, "autocomplete_result", result.Type)
	assert.Equal(t, "req-1", result.ID)
	assert.Contains(t, result.Items, autocomplete.Suggestion{Name: "x", Kind: autocomplete.KindVariable})

	// Ping round-trip
	require.NoError(t, conn.WriteJSON(CommandMessage{Type: "ping", ID: "req-2"}))
	var pong PongMessage
	require.NoError(t, conn.ReadJSON(&pong))
	assert.Equal(t, "pong", pong.Type)
	assert.Equal(t, "req-2", pong.ID)

	// Unknown command reports an error without dropping the connection
	require.NoError(t, conn.WriteJSON(CommandMessage{Type: "bogus", ID: "req-3"}))
	var errMsg ErrorMessage
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.Equal(t, "error", errMsg.Type)
	assert.Contains(t, errMsg.Error, "unknown command")
}

func TestWebSocketInvalidRequestReportsError(t *testing.T) {
	s := testServer(t)
	go s.Run()
	defer s.Stop()

	ts := httptest.NewServer(s.mux)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	require.NoError(t, conn.WriteJSON(CommandMessage{Type: "autocomplete", ID: "bad", XPath: ""}))

	var errMsg ErrorMessage
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.Equal(t, "error", errMsg.Type)
	assert.Equal(t, "bad", errMsg.ID)
}
