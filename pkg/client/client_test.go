package client

import (
	"bytes"
	"context"
	"encoding/json"
	stdErrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
)

func TestClient_SendsTokenAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/generate-summary", r.URL.Path)

		var req relay.SummaryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "shorter", req.Style)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(relay.SummaryResponse{Success: true, Summary: "ok: " + req.Transcript})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", WithToken("tok"))
	got, err := c.GenerateSummary(context.Background(), "hello", "shorter")
	require.NoError(t, err)
	assert.Equal(t, "ok: hello", got)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to extract actions","details":"upstream 429","actions":[]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ExtractActions(context.Background(), "t")
	var apiErr *APIError
	require.True(t, stdErrors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to extract actions", apiErr.Body.Error)
	assert.NotNil(t, apiErr.Actions)
	assert.Contains(t, err.Error(), "upstream 429")
}

func TestClient_TranscribeMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, fh, err := r.FormFile("audio")
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "rec.webm", fh.Filename)
		_ = json.NewEncoder(w).Encode(relay.TranscribeResponse{Success: true, Transcript: "[00:00] " + string(b), Text: string(b)})
	}))
	defer srv.Close()

	res, err := New(srv.URL).Transcribe(context.Background(), bytes.NewReader([]byte("audio")), "rec.webm")
	require.NoError(t, err)
	assert.Equal(t, "[00:00] audio", res.Transcript)
}

func TestClient_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exports/a.pdf" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Export not found"}`))
			return
		}
		_, _ = w.Write([]byte("%PDF-1.3"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var buf bytes.Buffer
	n, err := c.Download(context.Background(), "/exports/a.pdf", &buf)
	require.NoError(t, err)
	assert.EqualValues(t, 8, n)
	assert.Equal(t, "%PDF-1.3", buf.String())

	_, err = c.Download(context.Background(), "/exports/missing.pdf", io.Discard)
	var apiErr *APIError
	require.True(t, stdErrors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_ReplaceActions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/meetings/m1/actions", r.URL.Path)
		var req meeting.ReplaceActionsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		out := meeting.ActionListResponse{Success: true}
		for _, a := range req.Actions {
			out.Actions = append(out.Actions, &meeting.ActionResponse{ID: a.ID, ActionText: a.ActionText})
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	got, err := New(srv.URL).ReplaceActions(context.Background(), "m1", []meeting.ActionInput{{ID: "x", ActionText: "Do"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Do", got[0].ActionText)
}

func TestClient_WaitHealthy(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","service":"transcription","version":"1.0.0"}`))
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).WaitHealthy(context.Background(), 10*time.Second))
	assert.Equal(t, 3, calls)
}
