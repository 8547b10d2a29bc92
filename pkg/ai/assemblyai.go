package ai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// AssemblyAIClient is the hosted recogniser backend
type AssemblyAIClient struct {
	client       *aai.Client
	languageCode string
	logger       *zap.Logger
}

var _ Transcriber = (*AssemblyAIClient)(nil)

// NewAssemblyAIClient creates an AssemblyAI backend using the provided config.
// baseURL overrides the API endpoint when non-empty.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig, baseURL string, logger *zap.Logger) *AssemblyAIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []aai.ClientOption{
		aai.WithAPIKey(cfg.APIKey),
		aai.WithHTTPClient(&http.Client{Timeout: 5 * time.Minute}),
	}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}
	return &AssemblyAIClient{
		client:       aai.NewClientWithOptions(opts...),
		languageCode: cfg.LanguageCode,
		logger:       logger,
	}
}

// Transcribe uploads the audio file and waits for the transcript
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioPath string) (*Transcription, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	uploadURL, err := c.client.Upload(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to AssemblyAI: %w", err)
	}

	c.logger.Info("assemblyai.uploaded", zap.String("audio", audioPath))

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if c.languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(c.languageCode)
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcription failed: %s", msg)
	}

	return fromAssemblyAI(transcript), nil
}

// fromAssemblyAI maps speaker utterances to segments, converting ms to seconds
func fromAssemblyAI(t aai.Transcript) *Transcription {
	out := &Transcription{}
	if t.Text != nil {
		out.Text = *t.Text
	}
	out.Language = string(t.LanguageCode)

	if t.Utterances == nil {
		return out
	}
	out.Segments = make([]Segment, 0, len(t.Utterances))
	for _, utt := range t.Utterances {
		seg := Segment{}
		if utt.Text != nil {
			seg.Text = *utt.Text
		}
		if utt.Speaker != nil {
			seg.Speaker = *utt.Speaker
		}
		if utt.Start != nil {
			seg.Start = float64(*utt.Start) / 1000.0
		}
		if utt.End != nil {
			seg.End = float64(*utt.End) / 1000.0
		}
		out.Segments = append(out.Segments, seg)
	}
	return out
}
