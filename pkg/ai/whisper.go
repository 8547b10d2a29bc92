package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// ErrOutputNotFound is returned when whisper exits cleanly but wrote no JSON
var ErrOutputNotFound = errors.New("transcription output file not found")

// ToolError carries the recogniser's exit status and stderr
type ToolError struct {
	Err    error
	Stderr string
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("whisper failed: %v: %s", e.Err, e.Stderr)
	}
	return fmt.Sprintf("whisper failed: %v", e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Details returns the most useful diagnostic text for clients
func (e *ToolError) Details() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	return e.Err.Error()
}

// WhisperClient runs the local whisper CLI
type WhisperClient struct {
	binary  string
	model   string
	timeout time.Duration
	workDir string
	logger  *zap.Logger
}

var _ Transcriber = (*WhisperClient)(nil)

// NewWhisperClient creates a whisper runner. Output directories are created
// under workDir, one per invocation.
func NewWhisperClient(cfg *config.TranscribeConfig, logger *zap.Logger) *WhisperClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	binary := cfg.WhisperBinary
	if binary == "" {
		binary = "whisper"
	}
	model := cfg.WhisperModel
	if model == "" {
		model = "small"
	}
	return &WhisperClient{
		binary:  binary,
		model:   model,
		timeout: cfg.WhisperTimeout,
		workDir: cfg.UploadDir,
		logger:  logger,
	}
}

// Args returns the whisper command line for an input file and output directory
func (w *WhisperClient) Args(audioPath, outputDir string) []string {
	return []string{
		audioPath,
		"--output_format", "json",
		"--output_dir", outputDir,
		"--model", w.model,
		"--fp16", "False",
	}
}

// Transcribe runs whisper synchronously. Each call writes into its own
// private output directory which is removed before returning.
func (w *WhisperClient) Transcribe(ctx context.Context, audioPath string) (*Transcription, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	if err := os.MkdirAll(w.workDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	outputDir, err := os.MkdirTemp(w.workDir, "whisper-out-")
	if err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(outputDir); err != nil {
			w.logger.Warn("whisper.cleanup.failed",
				zap.String("path", outputDir),
				zap.Error(err),
			)
		}
	}()

	cmd := exec.CommandContext(ctx, w.binary, w.Args(audioPath, outputDir)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = 2 * time.Second

	started := time.Now()
	w.logger.Info("whisper.run",
		zap.String("audio", audioPath),
		zap.String("model", w.model),
	)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &ToolError{Err: ctxErr, Stderr: stderr.String()}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ToolError{Err: exitErr, Stderr: stderr.String()}
		}
		return nil, &ToolError{Err: err}
	}

	w.logger.Info("whisper.done",
		zap.String("audio", audioPath),
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("stdout_bytes", stdout.Len()),
	)

	jsonPath, err := findOutput(outputDir, audioPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcription output: %w", err)
	}

	var result Transcription
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse transcription output: %w", err)
	}
	return &result, nil
}

// findOutput prefers <base>.json and falls back to any JSON file whose name
// contains the input's base name. The directory is private to one call.
func findOutput(dir, audioPath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	exact := filepath.Join(dir, base+".json")
	if st, err := os.Stat(exact); err == nil && !st.IsDir() {
		return exact, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to list output directory: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasSuffix(name, ".json") && strings.Contains(name, base) {
			return filepath.Join(dir, name), nil
		}
	}
	return "", ErrOutputNotFound
}
