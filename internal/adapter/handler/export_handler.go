package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
)

// Export renders documents and serves stored exports
type Export struct {
	svc    export.Service
	store  storage.ExportStore
	logger *zap.Logger
}

// NewExport creates the export handler
func NewExport(svc export.Service, store storage.ExportStore, logger *zap.Logger) *Export {
	return &Export{svc: svc, store: store, logger: logger}
}

// ExportPDF renders the meeting as a PDF
// @Summary      Export PDF
// @Description  Renders title, transcript, notes and action items to a PDF and stores it under a unique name
// @Tags         Export
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      relay.ExportRequest   true  "Document content"
// @Success      200      {object}  relay.ExportResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      500      {object}  common.ErrorResponse  "Failed to generate PDF"
// @Router       /api/export-pdf [post]
func (h *Export) ExportPDF(c echo.Context) error {
	return h.export(c, export.PDFRenderer{})
}

// ExportWord renders the meeting as a Word document
// @Summary      Export Word document
// @Description  Renders title, transcript, notes and action items to a .docx file and stores it under a unique name
// @Tags         Export
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      relay.ExportRequest   true  "Document content"
// @Success      200      {object}  relay.ExportResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      500      {object}  common.ErrorResponse  "Failed to generate Word document"
// @Router       /api/export-word [post]
func (h *Export) ExportWord(c echo.Context) error {
	return h.export(c, export.WordRenderer{})
}

func (h *Export) export(c echo.Context, r export.Renderer) error {
	var req relay.ExportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	res, err := h.svc.Export(c.Request().Context(), r, export.Request{
		Title:      req.Title,
		Transcript: req.Transcript,
		Notes:      req.Notes,
		Actions:    presenter.FromActionInputs(req.Actions),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, relay.ExportResponse{
		Success:  true,
		Filename: res.Filename,
		URL:      res.URL,
	})
}

// Download serves a stored export
// @Summary      Download export
// @Description  Streams a previously generated export document
// @Tags         Export
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        filename  path  string  true  "Export filename"
// @Success      200  {file}    binary
// @Failure      404  {object}  common.ErrorResponse
// @Router       /exports/{filename} [get]
func (h *Export) Download(c echo.Context) error {
	name := c.Param("filename")
	if err := storage.ValidateName(name); err != nil {
		return HandleError(h.logger, c, errors.ErrNotFound("Export"))
	}

	rc, info, err := h.store.Open(c.Request().Context(), name)
	if err != nil {
		if stdErrors.Is(err, storage.ErrNotFound) || stdErrors.Is(err, storage.ErrInvalidName) {
			return HandleError(h.logger, c, errors.ErrNotFound("Export"))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("open export", err))
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	if info.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}
	return c.Stream(http.StatusOK, contentType, rc)
}
