// Package syncclient keeps a local copy of the completion state and pushes
// changes to the board server in the background. Local state changes first;
// a failed push is logged and the local change stands.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"maps"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/diegoclair/chore-board/internal/domain/entity"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	debug   *log.Logger

	mu    sync.Mutex
	state map[string]entity.TaskRecord

	inflight sync.WaitGroup
}

type Option func(*Client)

// WithDebugLogger receives push failures, which are otherwise silent.
func WithDebugLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.debug = l
	}
}

// WithHTTPClient replaces the default client. It must keep a cookie jar for
// the session cookie to survive between requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid board url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: defaultTimeout},
		debug:   log.New(io.Discard, "", 0),
		state:   map[string]entity.TaskRecord{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login opens a session; the cookie is kept in the client's jar.
func (c *Client) Login(ctx context.Context, password string) error {
	body, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return fmt.Errorf("failed to encode login: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}
	return nil
}

// Load replaces the local state with the server's.
func (c *Client) Load(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/api/task", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}

	var payload struct {
		Tasks map[string]entity.TaskRecord `json:"tasks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode tasks: %w", err)
	}
	if payload.Tasks == nil {
		payload.Tasks = map[string]entity.TaskRecord{}
	}

	c.mu.Lock()
	c.state = payload.Tasks
	c.mu.Unlock()

	return nil
}

// Board fetches the server-rendered board for the week containing date.
func (c *Client) Board(ctx context.Context, date time.Time) (*entity.Board, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/board?date="+date.Format("2006-01-02"), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var board entity.Board
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}
	return &board, nil
}

// Done reports the local done flag of a task; unknown tasks are not done.
func (c *Client) Done(key entity.TaskKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state[key.ID()].Done
}

// State returns a copy of the local state.
func (c *Client) State() map[string]entity.TaskRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.state)
}

// Toggle flips one task locally, pushes it and returns the new value.
func (c *Client) Toggle(key entity.TaskKey) bool {
	c.mu.Lock()
	done := !c.state[key.ID()].Done
	c.setLocked(key, done)
	c.mu.Unlock()

	c.push([]entity.TaskInput{entity.NewTaskInput(key, done)})
	return done
}

// SetAll sets every key to done locally and pushes them as one batch.
func (c *Client) SetAll(keys []entity.TaskKey, done bool) {
	if len(keys) == 0 {
		return
	}

	inputs := make([]entity.TaskInput, 0, len(keys))
	c.mu.Lock()
	for _, key := range keys {
		c.setLocked(key, done)
		inputs = append(inputs, entity.NewTaskInput(key, done))
	}
	c.mu.Unlock()

	c.push(inputs)
}

// Wait blocks until every pending push has finished.
func (c *Client) Wait() {
	c.inflight.Wait()
}

func (c *Client) setLocked(key entity.TaskKey, done bool) {
	c.state[key.ID()] = entity.TaskRecord{
		TaskKey:   key,
		Done:      done,
		UpdatedAt: time.Now().UTC(),
	}
}

func (c *Client) push(inputs []entity.TaskInput) {
	body, err := json.Marshal(inputs)
	if err != nil {
		c.debug.Printf("Failed to encode task update: %v", err)
		return
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()

		resp, err := c.do(ctx, http.MethodPost, "/api/task", body)
		if err != nil {
			c.debug.Printf("Failed to push %d task updates: %v", len(inputs), err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.debug.Printf("Failed to push %d task updates: %v", len(inputs), responseError(resp))
		}
	}()
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach board: %w", err)
	}
	return resp, nil
}

// StatusError is a non-200 answer from the board server.
type StatusError struct {
	Status  int
	Message string
	Reason  string
}

func (e *StatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("board returned %d: %s (%s)", e.Status, e.Message, e.Reason)
	}
	return fmt.Sprintf("board returned %d: %s", e.Status, e.Message)
}

func responseError(resp *http.Response) error {
	var payload struct {
		Error  string `json:"error"`
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload)
	if payload.Error == "" {
		payload.Error = http.StatusText(resp.StatusCode)
	}
	return &StatusError{Status: resp.StatusCode, Message: payload.Error, Reason: payload.Reason}
}
