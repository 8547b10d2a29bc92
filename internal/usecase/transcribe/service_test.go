package transcribe

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/errors"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
)

type fakeTranscriber struct {
	result  *pkgai.Transcription
	err     error
	seen    string
	content string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audioPath string) (*pkgai.Transcription, error) {
	f.seen = audioPath
	b, _ := os.ReadFile(audioPath)
	f.content = string(b)
	return f.result, f.err
}

func newService(t *testing.T, tr pkgai.Transcriber, maxBytes int64) (Service, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := NewTranscribeService(tr, dir, maxBytes, nil, nil)
	require.NoError(t, err)
	return svc, dir
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestTranscribe_Segments(t *testing.T) {
	tr := &fakeTranscriber{result: &pkgai.Transcription{
		Text: " Hello there. Second line.",
		Segments: []pkgai.Segment{
			{Start: 0, Text: " Hello there."},
			{Start: 65.7, Text: "  "},
			{Start: 125.2, Text: " Second line."},
		},
	}}
	svc, dir := newService(t, tr, 0)

	res, err := svc.Transcribe(context.Background(), strings.NewReader("RIFFdata"), "recording.WAV")
	require.NoError(t, err)

	assert.Equal(t, "[00:00] Hello there.\n[02:05] Second line.", res.Transcript)
	assert.Equal(t, " Hello there. Second line.", res.Text)
	assert.Equal(t, "RIFFdata", tr.content)
	assert.Equal(t, ".wav", filepath.Ext(tr.seen))
	assert.Zero(t, dirEntries(t, dir), "upload must be removed")
}

func TestTranscribe_Fallbacks(t *testing.T) {
	tr := &fakeTranscriber{result: &pkgai.Transcription{Text: "flat text only"}}
	svc, _ := newService(t, tr, 0)
	res, err := svc.Transcribe(context.Background(), strings.NewReader("a"), "a.webm")
	require.NoError(t, err)
	assert.Equal(t, "flat text only", res.Transcript)

	tr.result = &pkgai.Transcription{}
	res, err = svc.Transcribe(context.Background(), strings.NewReader("a"), "a.webm")
	require.NoError(t, err)
	assert.Equal(t, pkgai.NoSpeechText, res.Transcript)
}

func TestTranscribe_ToolFailure(t *testing.T) {
	tr := &fakeTranscriber{err: &pkgai.ToolError{Err: fmt.Errorf("exit status 1"), Stderr: "ModuleNotFoundError: whisper\n"}}
	svc, dir := newService(t, tr, 0)

	_, err := svc.Transcribe(context.Background(), strings.NewReader("abc"), "x.webm")
	require.Error(t, err)

	var ae errors.AppError
	require.True(t, stdErrors.As(err, &ae))
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPCode)
	assert.Equal(t, "Transcription failed", ae.Message)
	assert.Equal(t, errors.WhisperInstallHint, ae.Hint)
	assert.Equal(t, "ModuleNotFoundError: whisper", ae.Details["details"])
	assert.Zero(t, dirEntries(t, dir), "upload must be removed on failure")
}

func TestTranscribe_HostedFailureHasNoHint(t *testing.T) {
	tr := &fakeTranscriber{err: stdErrors.New("transcription error: bad audio")}
	svc, _ := newService(t, tr, 0)

	_, err := svc.Transcribe(context.Background(), strings.NewReader("abc"), "x.webm")
	var ae errors.AppError
	require.True(t, stdErrors.As(err, &ae))
	assert.Empty(t, ae.Hint)
	assert.Equal(t, "transcription error: bad audio", ae.Details["details"])
}

func TestTranscribe_InvalidInput(t *testing.T) {
	tr := &fakeTranscriber{result: &pkgai.Transcription{Text: "x"}}
	svc, dir := newService(t, tr, 4)

	_, err := svc.Transcribe(context.Background(), nil, "a.webm")
	var ae errors.AppError
	require.True(t, stdErrors.As(err, &ae))
	assert.Equal(t, "No audio file provided", ae.Message)

	_, err = svc.Transcribe(context.Background(), strings.NewReader(""), "a.webm")
	require.True(t, stdErrors.As(err, &ae))
	assert.Equal(t, http.StatusBadRequest, ae.HTTPCode)

	_, err = svc.Transcribe(context.Background(), strings.NewReader("too large"), "a.webm")
	require.True(t, stdErrors.As(err, &ae))
	assert.Equal(t, http.StatusBadRequest, ae.HTTPCode)

	assert.Empty(t, tr.seen, "recogniser must not run")
	assert.Zero(t, dirEntries(t, dir))
}

func TestUploadExt(t *testing.T) {
	assert.Equal(t, ".mp3", uploadExt("talk.mp3"))
	assert.Equal(t, ".webm", uploadExt("blob"))
	assert.Equal(t, ".webm", uploadExt("../../etc/passwd"))
	assert.Equal(t, ".webm", uploadExt("x.we$bm"))
	assert.Equal(t, ".webm", uploadExt("x.verylongext"))
}
