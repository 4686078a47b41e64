package syncclient

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBoard records every POST /api/task batch and serves a fixed snapshot.
type fakeBoard struct {
	mu       sync.Mutex
	batches  [][]map[string]any
	snapshot string
	fail     bool
	release  chan struct{}
}

func (f *fakeBoard) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "hemmelig" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error":"Wrong password"}`)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "noba_auth", Value: "s.sig", Path: "/"})
		io.WriteString(w, `{"ok":true}`)
	})
	mux.HandleFunc("GET /api/task", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("noba_auth"); err != nil || c.Value != "s.sig" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error":"Unauthorized"}`)
			return
		}
		io.WriteString(w, f.snapshot)
	})
	mux.HandleFunc("POST /api/task", func(w http.ResponseWriter, r *http.Request) {
		if f.release != nil {
			<-f.release
		}
		var batch []map[string]any
		_ = json.NewDecoder(r.Body).Decode(&batch)

		f.mu.Lock()
		f.batches = append(f.batches, batch)
		f.mu.Unlock()

		if f.fail {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"error":"Failed to store tasks"}`)
			return
		}
		io.WriteString(w, `{"ok":true,"count":1}`)
	})
	mux.HandleFunc("GET /api/board", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"week":{"year":2024,"week":10,"key":"2024-W10"},"weekly":{"period":"ugentlig","total":3},"monthly":{"period":"månedlig"}}`)
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeBoard, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

var kitchen0 = entity.TaskKey{Week: "2024-W10", Period: "ugentlig", Assignee: "NA", Category: "køkken", Index: 0}

func TestClient_LoginAndLoad(t *testing.T) {
	f := &fakeBoard{snapshot: `{"tasks":{"2024-W10|ugentlig|NA|køkken|0":{"week":"2024-W10","period":"ugentlig","assignee":"NA","category":"køkken","index":0,"done":true,"updatedAt":"2024-03-04T09:00:00Z"}}}`}
	c := newTestClient(t, f)
	ctx := context.Background()

	err := c.Load(ctx)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)

	err = c.Login(ctx, "forkert")
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "Wrong password", statusErr.Message)

	require.NoError(t, c.Login(ctx, "hemmelig"))
	require.NoError(t, c.Load(ctx))

	assert.True(t, c.Done(kitchen0))
	assert.False(t, c.Done(entity.TaskKey{Week: "2024-W10", Period: "ugentlig", Assignee: "NA", Category: "køkken", Index: 1}))
	assert.Len(t, c.State(), 1)
}

func TestClient_LoadReplacesState(t *testing.T) {
	f := &fakeBoard{snapshot: `{"tasks":{}}`}
	c := newTestClient(t, f)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "hemmelig"))

	c.Toggle(kitchen0)
	c.Wait()
	require.True(t, c.Done(kitchen0))

	require.NoError(t, c.Load(ctx))
	assert.False(t, c.Done(kitchen0), "load must replace local state wholesale")
	assert.Empty(t, c.State())
}

func TestClient_Toggle(t *testing.T) {
	f := &fakeBoard{}
	c := newTestClient(t, f)

	assert.True(t, c.Toggle(kitchen0))
	assert.True(t, c.Done(kitchen0))
	assert.False(t, c.Toggle(kitchen0))
	assert.False(t, c.Done(kitchen0))
	c.Wait()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.batches, 2)
	for _, batch := range f.batches {
		require.Len(t, batch, 1)
		assert.Equal(t, "køkken", batch[0]["category"])
		assert.Equal(t, float64(0), batch[0]["index"])
	}
}

func TestClient_ToggleDoesNotWaitForNetwork(t *testing.T) {
	f := &fakeBoard{release: make(chan struct{})}
	c := newTestClient(t, f)

	start := time.Now()
	c.Toggle(kitchen0)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, c.Done(kitchen0))

	close(f.release)
	c.Wait()
}

func TestClient_SetAll(t *testing.T) {
	f := &fakeBoard{}
	c := newTestClient(t, f)

	keys := []entity.TaskKey{
		kitchen0,
		{Week: "2024-W10", Period: "ugentlig", Assignee: "NA", Category: "køkken", Index: 1},
	}
	c.SetAll(keys, true)
	c.SetAll(nil, true)
	c.Wait()

	for _, k := range keys {
		assert.True(t, c.Done(k))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.batches, 1, "one batch per call, none for an empty call")
	assert.Len(t, f.batches[0], 2)
	assert.Equal(t, true, f.batches[0][1]["done"])
}

func TestClient_PushFailureKeepsLocalChange(t *testing.T) {
	var logs strings.Builder
	f := &fakeBoard{fail: true}
	c := newTestClient(t, f, WithDebugLogger(log.New(&logs, "", 0)))

	c.Toggle(kitchen0)
	c.Wait()

	assert.True(t, c.Done(kitchen0))
	assert.Contains(t, logs.String(), "Failed to push 1 task updates")
}

func TestClient_UnreachableServer(t *testing.T) {
	var logs strings.Builder
	c, err := New("http://127.0.0.1:1", WithDebugLogger(log.New(&logs, "", 0)))
	require.NoError(t, err)

	c.Toggle(kitchen0)
	c.Wait()
	assert.True(t, c.Done(kitchen0))
	assert.Contains(t, logs.String(), "failed to reach board")

	assert.Error(t, c.Load(context.Background()))
}

func TestClient_Board(t *testing.T) {
	c := newTestClient(t, &fakeBoard{})

	board, err := c.Board(context.Background(), time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-W10", board.Week.Key)
	assert.Equal(t, 3, board.Weekly.Total)
}

func TestClient_StateIsACopy(t *testing.T) {
	c := newTestClient(t, &fakeBoard{})
	c.Toggle(kitchen0)
	c.Wait()

	state := c.State()
	delete(state, kitchen0.ID())
	assert.True(t, c.Done(kitchen0))
}
