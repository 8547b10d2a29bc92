// Package client is a Go client for the meeting notes HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
)

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Body       common.ErrorResponse
	// Actions is set for relays that return an empty list alongside errors
	Actions []*meeting.ActionResponse
}

// Error prefers the detailed cause over the generic message, like the web client
func (e *APIError) Error() string {
	msg := e.Body.Details
	if msg == "" {
		msg = e.Body.Error
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Body.Hint != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, msg, e.Body.Hint)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// Client talks to the API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sends token as a bearer credential
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health calls GET /api/health
func (c *Client) Health(ctx context.Context) (*common.HealthResponse, error) {
	var out common.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WaitHealthy polls the health endpoint with exponential backoff until it
// answers or maxWait elapses
func (c *Client) WaitHealthy(ctx context.Context, maxWait time.Duration) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = maxWait
	return backoff.Retry(func() error {
		_, err := c.Health(ctx)
		return err
	}, backoff.WithContext(b, ctx))
}

// Transcribe uploads audio as the multipart "audio" field
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (*relay.TranscribeResponse, error) {
	if filename == "" {
		filename = "meeting.webm"
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("audio", filename)
		if err == nil {
			_, err = io.Copy(part, audio)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/api/transcribe", pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out relay.TranscribeResponse
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateSummary calls POST /api/generate-summary and returns the completion
func (c *Client) GenerateSummary(ctx context.Context, transcript, style string) (string, error) {
	var out relay.SummaryResponse
	err := c.do(ctx, http.MethodPost, "/api/generate-summary", relay.SummaryRequest{Transcript: transcript, Style: style}, &out)
	if err != nil {
		return "", err
	}
	return out.Summary, nil
}

// ExtractActions calls POST /api/extract-actions
func (c *Client) ExtractActions(ctx context.Context, transcript string) ([]*meeting.ActionResponse, error) {
	var out relay.ActionsResponse
	if err := c.do(ctx, http.MethodPost, "/api/extract-actions", relay.ActionsRequest{Transcript: transcript}, &out); err != nil {
		return nil, err
	}
	return out.Actions, nil
}

// ExportPDF calls POST /api/export-pdf
func (c *Client) ExportPDF(ctx context.Context, req relay.ExportRequest) (*relay.ExportResponse, error) {
	return c.export(ctx, "/api/export-pdf", req)
}

// ExportWord calls POST /api/export-word
func (c *Client) ExportWord(ctx context.Context, req relay.ExportRequest) (*relay.ExportResponse, error) {
	return c.export(ctx, "/api/export-word", req)
}

func (c *Client) export(ctx context.Context, path string, req relay.ExportRequest) (*relay.ExportResponse, error) {
	var out relay.ExportResponse
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Download copies the export at url (as returned by an export call) into w
func (c *Client) Download(ctx context.Context, exportURL string, w io.Writer) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", exportURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, decodeError(resp)
	}
	return io.Copy(w, resp.Body)
}

// CreateShareLink calls POST /api/create-share-link
func (c *Client) CreateShareLink(ctx context.Context, meetingID string) (*relay.CreateShareResponse, error) {
	var out relay.CreateShareResponse
	if err := c.do(ctx, http.MethodPost, "/api/create-share-link", relay.CreateShareRequest{MeetingID: meetingID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SharedMeeting calls GET /api/share/:token
func (c *Client) SharedMeeting(ctx context.Context, token string) (*meeting.MeetingResponse, error) {
	var out relay.SharedMeetingResponse
	if err := c.do(ctx, http.MethodGet, "/api/share/"+url.PathEscape(token), nil, &out); err != nil {
		return nil, err
	}
	return out.Meeting, nil
}

// ValidateMembership calls POST /api/validate-membership
func (c *Client) ValidateMembership(ctx context.Context, memberID string) (*relay.MembershipResponse, error) {
	var out relay.MembershipResponse
	if err := c.do(ctx, http.MethodPost, "/api/validate-membership", relay.MembershipRequest{MemberID: memberID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMeetings calls GET /api/meetings
func (c *Client) ListMeetings(ctx context.Context) ([]*meeting.MeetingResponse, error) {
	var out meeting.MeetingListResponse
	if err := c.do(ctx, http.MethodGet, "/api/meetings", nil, &out); err != nil {
		return nil, err
	}
	return out.Meetings, nil
}

// GetMeeting calls GET /api/meetings/:id
func (c *Client) GetMeeting(ctx context.Context, id string) (*meeting.MeetingDetailResponse, error) {
	var out meeting.MeetingDetailResponse
	if err := c.do(ctx, http.MethodGet, "/api/meetings/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveMeeting calls PUT /api/meetings/:id
func (c *Client) SaveMeeting(ctx context.Context, id string, req meeting.SaveMeetingRequest) (*meeting.MeetingResponse, error) {
	var out meeting.SaveMeetingResponse
	if err := c.do(ctx, http.MethodPut, "/api/meetings/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return out.Meeting, nil
}

// DeleteMeeting calls DELETE /api/meetings/:id
func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/meetings/"+url.PathEscape(id), nil, nil)
}

// ReplaceActions calls PUT /api/meetings/:id/actions
func (c *Client) ReplaceActions(ctx context.Context, id string, actions []meeting.ActionInput) ([]*meeting.ActionResponse, error) {
	var out meeting.ActionListResponse
	err := c.do(ctx, http.MethodPut, "/api/meetings/"+url.PathEscape(id)+"/actions", meeting.ReplaceActionsRequest{Actions: actions}, &out)
	if err != nil {
		return nil, err
	}
	return out.Actions, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body struct {
		common.ErrorResponse
		Actions []*meeting.ActionResponse `json:"actions"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Body = body.ErrorResponse
		apiErr.Actions = body.Actions
	} else {
		apiErr.Body.Error = strings.TrimSpace(string(raw))
	}
	return apiErr
}
