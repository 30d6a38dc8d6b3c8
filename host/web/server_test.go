package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/timepicker"
	"github.com/agiangrant/timepicker/config"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Picker.Format = "24h"
	s, err := NewServer(cfg, false)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) (*websocket.Conn, Frame) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, readFrame(t, conn)
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func doJSON(t *testing.T, method, url string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestNewServerRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Picker.Mode = "triple"
	_, err := NewServer(cfg, false)
	assert.Error(t, err)
}

func TestIndexAndHealth(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := doJSON(t, http.MethodGet, ts.URL+"/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "<canvas")

	code, body = doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok","sessions":0}`, string(body))
}

func TestWebSocketSession(t *testing.T) {
	s, ts := newTestServer(t)
	conn, first := dial(t, ts)

	require.NotEmpty(t, first.Session)
	assert.Equal(t, "single", first.Mode)
	assert.True(t, first.Time.Is24Hour)
	require.Len(t, first.Commands, 1, "nothing but a clear before the first resize")
	assert.Equal(t, 1, s.SessionCount())

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "resize", Width: 200, Height: 200}))
	f := readFrame(t, conn)
	assert.Len(t, f.Commands, 4)

	code, _ := doJSON(t, http.MethodPut, ts.URL+"/api/sessions/"+first.Session+"/time", map[string]any{"hour": 0, "minute": 0})
	require.Equal(t, http.StatusOK, code)
	f = readFrame(t, conn)
	assert.Equal(t, "00:00", f.Display)

	// 3 o'clock on the 24-hour dial.
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "down", X: 80, Y: 0}))
	f = readFrame(t, conn)
	assert.Equal(t, 6, f.Time.Hour)
	assert.Equal(t, 0, f.Time.Minute)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "move", X: 0, Y: 80}))
	f = readFrame(t, conn)
	assert.Equal(t, "12:00", f.Display)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "up", X: 0, Y: 80}))
	readFrame(t, conn)

	code, body := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+first.Session+"/time", nil)
	require.Equal(t, http.StatusOK, code)
	var got timepicker.PickedTime
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, timepicker.PickedTime{Hour: 12, Minute: 0, Is24Hour: true}, got)

	conn.Close()
	require.Eventually(t, func() bool { return s.SessionCount() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestSetTimeAPI(t *testing.T) {
	_, ts := newTestServer(t)
	conn, first := dial(t, ts)
	base := ts.URL + "/api/sessions/" + first.Session

	tests := []struct {
		name string
		body any
		code int
	}{
		{"hour out of range", map[string]any{"hour": 24, "minute": 0}, http.StatusBadRequest},
		{"minute out of range", map[string]any{"hour": 1, "minute": 60}, http.StatusBadRequest},
		{"twelve hour out of range", map[string]any{"hour": 13, "minute": 0, "format": "12h"}, http.StatusBadRequest},
		{"unknown format", map[string]any{"hour": 1, "minute": 0, "format": "36h"}, http.StatusBadRequest},
		{"not json", "nope", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := doJSON(t, http.MethodPut, base+"/time", tt.body)
			assert.Equal(t, tt.code, code)
		})
	}

	code, body := doJSON(t, http.MethodPut, base+"/time", map[string]any{"hour": 12, "minute": 5, "format": "12h", "is_am": true})
	require.Equal(t, http.StatusOK, code)
	var got timepicker.PickedTime
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, timepicker.PickedTime{Hour: 0, Minute: 5, Is24Hour: false}, got)
	assert.Equal(t, "12:05 AM", readFrame(t, conn).Display)

	code, body = doJSON(t, http.MethodPut, base+"/format", map[string]any{"is_24_hour": true})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.True(t, got.Is24Hour)
	assert.Equal(t, 0, got.Hour)
	assert.Equal(t, "00:05", readFrame(t, conn).Display)
}

func TestUnknownSession(t *testing.T) {
	_, ts := newTestServer(t)
	code, _ := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/missing/time", nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = doJSON(t, http.MethodPut, ts.URL+"/api/sessions/missing/format", map[string]any{"is_24_hour": true})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)
	conn, _ := dial(t, ts)
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "wiggle"}))
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "resize", Width: 100, Height: 100}))
	readFrame(t, conn)

	code, body := doJSON(t, http.MethodGet, ts.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, code)
	text := string(body)
	assert.Contains(t, text, "timepicker_sessions_active 1")
	assert.Contains(t, text, "timepicker_sessions_total 1")
	assert.Contains(t, text, `timepicker_rejected_inputs_total{reason="bad_message"} 1`)
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"no origin header", nil, "", true},
		{"same host", nil, "http://dial.local", true},
		{"other host", nil, "http://evil.example", false},
		{"listed", []string{"http://app.example"}, "http://app.example", true},
		{"not listed", []string{"http://app.example"}, "http://dial.local", false},
		{"wildcard", []string{"*"}, "http://anything.example", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Server.AllowedOrigins = tt.allowed
			s, err := NewServer(cfg, false)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "http://dial.local/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, s.checkOrigin(req))
		})
	}
}

func TestReloadRestylesLiveSessions(t *testing.T) {
	s, ts := newTestServer(t)
	conn, _ := dial(t, ts)
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "resize", Width: 200, Height: 200}))
	readFrame(t, conn)

	cfg := config.Default()
	cfg.Picker.Colors.Track = "#123456"
	require.NoError(t, s.Reload(cfg))

	f := readFrame(t, conn)
	require.Len(t, f.Commands, 4)
	require.NotNil(t, f.Commands[2].StrokeCircle)
	assert.Equal(t, uint32(0x123456FF), f.Commands[2].StrokeCircle.Color)
	assert.True(t, f.Time.Is24Hour, "the format of a live session is kept")

	cfg.Picker.Mode = "triple"
	assert.Error(t, s.Reload(cfg))
}
