package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/auth"
	"github.com/claude/ironlog/internal/models"
)

// Client calls the remote fitness API. Every request carries a bearer token
// from the TokenSource; without one the call fails before touching the
// network. No request is retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenSource
	log        *slog.Logger
}

// New creates a Client targeting the given base URL.
func New(baseURL string, tokens auth.TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		log:        log,
	}
}

// SetHTTPClient replaces the underlying HTTP client. Used for tsnet
// transports that dial the API host over the tailnet.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// do runs one authenticated request. out may be nil to discard the body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.tokens.IDToken(ctx)
	if err != nil {
		return &AuthError{Err: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &ServerError{Method: method, Path: path, Err: fmt.Errorf("marshaling body: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &ServerError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServerError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ServerError{Method: method, Path: path, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("api request failed", "method", method, "path", path, "status", resp.StatusCode)
		return &HTTPError{Method: method, Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &ServerError{Method: method, Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// ListWorkoutTypes fetches the workout-type catalog, order as served.
func (c *Client) ListWorkoutTypes(ctx context.Context) ([]models.WorkoutType, error) {
	var resp struct {
		WorkoutTypes []models.WorkoutType `json:"workoutTypes"`
	}
	if err := c.do(ctx, http.MethodGet, "/workout-types", nil, &resp); err != nil {
		return nil, err
	}
	return resp.WorkoutTypes, nil
}

// ListExercises fetches the exercise catalog, order as served.
func (c *Client) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	var resp struct {
		Exercises []models.Exercise `json:"exercises"`
	}
	if err := c.do(ctx, http.MethodGet, "/exercises", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Exercises, nil
}

// ListWorkouts fetches the quick-log workout list. The endpoint has served
// both a bare array and a {workouts} wrapper; both decode.
func (c *Client) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/workouts", nil, &raw); err != nil {
		return nil, err
	}

	var list []models.Workout
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var resp struct {
		Workouts []models.Workout `json:"workouts"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ServerError{Method: http.MethodGet, Path: "/workouts", Err: fmt.Errorf("decoding response: %w", err)}
	}
	return resp.Workouts, nil
}

// CreateWorkout logs a workout of the given type.
func (c *Client) CreateWorkout(ctx context.Context, workoutTypeID, note string) (*models.Workout, error) {
	var created models.Workout
	err := c.do(ctx, http.MethodPost, "/workouts", map[string]string{
		"workoutTypeId": workoutTypeID,
		"note":          note,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListHistory fetches all of the user's sessions, completed or not.
// Filtering to completed sessions is the consumer's job.
func (c *Client) ListHistory(ctx context.Context) ([]models.Session, error) {
	var resp struct {
		Sessions []models.Session `json:"sessions"`
	}
	if err := c.do(ctx, http.MethodGet, "/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// SessionDetail fetches one session with its sets.
func (c *Client) SessionDetail(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	var detail models.SessionDetail
	if err := c.do(ctx, http.MethodGet, "/sessions/"+sessionID, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateSession opens a new workout session and returns its server id.
func (c *Client) CreateSession(ctx context.Context, title string) (string, error) {
	var resp struct {
		SessionID string `json:"sessionId"`
	}
	err := c.do(ctx, http.MethodPost, "/sessions", map[string]string{"title": title}, &resp)
	if err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

// SaveSet persists one set against an open session.
func (c *Client) SaveSet(ctx context.Context, sessionID string, set models.SetRecord) error {
	return c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/sets", set, nil)
}

// CompleteSession marks a session COMPLETED and returns the updated record.
func (c *Client) CompleteSession(ctx context.Context, sessionID string) (*models.Session, error) {
	var updated models.Session
	err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/complete", nil, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
