package transcribe

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
)

// Result is the relay response body
type Result struct {
	Transcript string `json:"transcript"`
	Text       string `json:"text"`
}

// Service relays uploaded audio to the speech recogniser
type Service interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (*Result, error)
}

type transcribeService struct {
	transcriber pkgai.Transcriber
	uploadDir   string
	maxBytes    int64
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTranscribeService creates the relay. Uploads are spooled under uploadDir
// and removed after every request. maxBytes <= 0 disables the size check.
func NewTranscribeService(transcriber pkgai.Transcriber, uploadDir string, maxBytes int64, m *metrics.Metrics, logger *zap.Logger) (Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &transcribeService{
		transcriber: transcriber,
		uploadDir:   uploadDir,
		maxBytes:    maxBytes,
		metrics:     m,
		logger:      logger,
	}, nil
}

func (s *transcribeService) Transcribe(ctx context.Context, audio io.Reader, filename string) (res *Result, err error) {
	if audio == nil {
		return nil, errors.ErrInvalidArgument("No audio file provided")
	}
	started := time.Now()
	defer func() { s.metrics.ObserveRelay("transcribe", started, err) }()

	path, err := s.spool(audio, filename)
	if err != nil {
		return nil, err
	}
	defer s.remove(path)

	s.logger.Info("transcribing audio",
		zap.String("file", filepath.Base(path)),
		zap.String("original_name", filename),
	)

	t, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		return nil, transcriptionError(err)
	}

	formatted := pkgai.FormatTranscript(t)
	s.logger.Info("transcription complete",
		zap.Int("segments", len(t.Segments)),
		zap.Int("chars", len(formatted)),
	)
	return &Result{
		Transcript: formatted,
		Text:       pkgai.PlainText(t, formatted),
	}, nil
}

// spool writes the upload under a fresh uuid name, keeping the extension hint
func (s *transcribeService) spool(audio io.Reader, filename string) (string, error) {
	path := filepath.Join(s.uploadDir, uuid.NewString()+uploadExt(filename))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", errors.ErrStorageFailed("spool upload", err)
	}

	src := audio
	if s.maxBytes > 0 {
		src = io.LimitReader(audio, s.maxBytes+1)
	}
	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		s.remove(path)
		return "", errors.ErrStorageFailed("spool upload", copyErr)
	case closeErr != nil:
		s.remove(path)
		return "", errors.ErrStorageFailed("spool upload", closeErr)
	case s.maxBytes > 0 && n > s.maxBytes:
		s.remove(path)
		return "", errors.ErrInvalidArgument(fmt.Sprintf("Audio file exceeds %d bytes", s.maxBytes))
	case n == 0:
		s.remove(path)
		return "", errors.ErrInvalidArgument("No audio file provided")
	}
	return path, nil
}

func (s *transcribeService) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove uploaded audio",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// uploadExt keeps a short alphanumeric extension from the client's filename
func uploadExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 6 {
		return ".webm"
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".webm"
		}
	}
	return ext
}

func transcriptionError(err error) error {
	appErr := errors.ErrAITranscriptionFailed(err)

	var toolErr *pkgai.ToolError
	switch {
	case stdErrors.As(err, &toolErr):
		return appErr.WithHint(errors.WhisperInstallHint).WithDetail("details", toolErr.Details())
	case stdErrors.Is(err, pkgai.ErrOutputNotFound):
		return appErr.WithHint(errors.WhisperInstallHint).WithDetail("details", err.Error())
	}
	return appErr.WithDetail("details", err.Error())
}
