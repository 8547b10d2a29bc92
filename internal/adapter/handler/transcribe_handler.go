package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
	"github.com/johnquangdev/meeting-notes/internal/usecase/transcribe"
)

// AudioField is the multipart field carrying the recording
const AudioField = "audio"

// Transcribe handles audio uploads
type Transcribe struct {
	svc      transcribe.Service
	maxBytes int64
	logger   *zap.Logger
}

// NewTranscribe creates the transcription handler
func NewTranscribe(svc transcribe.Service, maxBytes int64, logger *zap.Logger) *Transcribe {
	return &Transcribe{svc: svc, maxBytes: maxBytes, logger: logger}
}

// Transcribe runs speech recognition on an uploaded recording
// @Summary      Transcribe audio
// @Description  Runs the speech recogniser on the uploaded file and returns "[MM:SS] text" lines plus the flat text
// @Tags         Transcription
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        audio  formData  file  true  "Recording (max 100 MB)"
// @Success      200    {object}  relay.TranscribeResponse
// @Failure      400    {object}  common.ErrorResponse  "No audio file provided"
// @Failure      500    {object}  common.ErrorResponse  "Transcription failed (details, hint)"
// @Router       /api/transcribe [post]
func (h *Transcribe) Transcribe(c echo.Context) error {
	if h.maxBytes > 0 {
		// multipart framing is allowed on top of the file limit
		c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, h.maxBytes+1<<20)
	}

	fh, err := c.FormFile(AudioField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stdErrors.As(err, &tooLarge) {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("Audio file is too large"))
		}
		return HandleError(h.logger, c, errors.ErrInvalidArgument("No audio file provided"))
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Audio file is too large"))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer f.Close()

	res, err := h.svc.Transcribe(c.Request().Context(), f, fh.Filename)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, relay.TranscribeResponse{
		Success:    true,
		Transcript: res.Transcript,
		Text:       res.Text,
	})
}
