// Package client implements the synchronization client for the remote event
// store. It owns no state: every call translates to one HTTP request against
// the store's JSON REST contract and translates the response back into the
// internal event representation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mkravets/eventcal/internal/calendar"
)

// Op tags a TransportError with the operation that failed.
type Op string

const (
	OpFetch  Op = "fetch"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// TransportError reports a failed remote call. The engine never retries;
// retry policy belongs to the caller.
type TransportError struct {
	Op         Op
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed: %s (status %d)", e.Op, e.Message, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Config struct {
	URL     string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(config.URL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchRange loads all events with start_date <= date <= end_date.
func (c *Client) FetchRange(ctx context.Context, startDate, endDate string) ([]calendar.Event, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	var records []record
	if err := c.do(ctx, OpFetch, http.MethodGet, "/events?"+query.Encode(), nil, &records); err != nil {
		return nil, err
	}

	events := make([]calendar.Event, 0, len(records))
	for _, r := range records {
		events = append(events, r.toEvent())
	}
	return events, nil
}

// Create persists a draft and returns it with the id assigned by the store.
func (c *Client) Create(ctx context.Context, draft calendar.Draft) (calendar.Event, error) {
	var saved record
	if err := c.do(ctx, OpCreate, http.MethodPost, "/events", draftToRecord(draft), &saved); err != nil {
		return calendar.Event{}, err
	}
	return saved.toEvent(), nil
}

// Update replaces the stored event with the draft's fields.
func (c *Client) Update(ctx context.Context, id string, draft calendar.Draft) (calendar.Event, error) {
	var saved record
	if err := c.do(ctx, OpUpdate, http.MethodPut, "/events/"+url.PathEscape(id), draftToRecord(draft), &saved); err != nil {
		return calendar.Event{}, err
	}
	return saved.toEvent(), nil
}

// Remove deletes an event by id.
func (c *Client) Remove(ctx context.Context, id string) error {
	return c.do(ctx, OpDelete, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, op Op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
		}
	}
	return nil
}

// errorMessage pulls the store's {"error": "..."} body if present.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}
