package export

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
)

// Renderer turns laid out blocks into document bytes
type Renderer interface {
	Format() string
	Ext() string
	ContentType() string
	Render(blocks []Block) ([]byte, error)
}

// Result is the relay response body
type Result struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Service renders and stores exports
type Service interface {
	Export(ctx context.Context, r Renderer, req Request) (*Result, error)
}

type exportService struct {
	store   storage.ExportStore
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService creates the export relay
func NewExportService(store storage.ExportStore, m *metrics.Metrics, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &exportService{store: store, metrics: m, logger: logger, now: time.Now}
}

// Export renders req and stores it under a fresh name. Stores never overwrite,
// so the returned filename may carry a collision suffix.
func (s *exportService) Export(ctx context.Context, r Renderer, req Request) (res *Result, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveRelay("export_"+r.Format(), started, err) }()

	now := s.now()
	data, err := r.Render(BuildDocument(req, now))
	if err != nil {
		return nil, errors.ErrExportFailed(exportLabel(r), err)
	}

	name, err := s.store.Save(ctx, Filename(req.Title, now, r.Ext()), data, r.ContentType())
	if err != nil {
		return nil, errors.ErrExportFailed(exportLabel(r), err)
	}

	s.metrics.ObserveExport(r.Format(), len(data))
	s.logger.Info("export written",
		zap.String("format", r.Format()),
		zap.String("filename", name),
		zap.Int("bytes", len(data)),
		zap.Int("actions", len(req.Actions)),
	)
	return &Result{Filename: name, URL: "/exports/" + url.PathEscape(name)}, nil
}

func exportLabel(r Renderer) string {
	if r.Format() == "pdf" {
		return "PDF"
	}
	return "Word document"
}
