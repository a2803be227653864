package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/starboard/internal/config"
	"github.com/vovakirdan/starboard/internal/core"
	"github.com/vovakirdan/starboard/internal/metrics"
)

type testServer struct {
	handler http.Handler
	metrics *metrics.Metrics
	board   *core.Board
}

// newTestServer builds the router over fresh in-memory stores with
// sequential message IDs ("m1", "m2", ...).
func newTestServer(t *testing.T, capacity int) *testServer {
	t.Helper()

	var (
		mu  sync.Mutex
		seq int
	)
	gen := func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return "m" + strconv.Itoa(seq)
	}

	m := metrics.New()
	board := core.NewBoard(
		core.NewIdentityStore(),
		core.NewRoomStore(capacity),
		core.WithObserver(m),
		core.WithIDGenerator(gen),
		core.WithClock(func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }),
	)

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.MaxBodyBytes = 1 << 10

	disabledLogger := zerolog.Nop()
	server := NewServer(board, cfg, m, &disabledLogger)

	return &testServer{handler: server.Handler, metrics: m, board: board}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	s.handler.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), resp.Body.String())
	return out
}
