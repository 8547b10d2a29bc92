package export

import (
	"bytes"
	"context"
	stdErrors "errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
)

var fixedNow = time.Date(2025, 10, 24, 15, 4, 5, 0, time.UTC)

func sampleRequest() Request {
	a1 := entities.NewActionItem("Send the deck")
	a1.Assignee = "Ana"
	a1.DueDate = "2025-10-25"
	a2 := entities.NewActionItem("Book a room")
	a2.Assignee = ""
	return Request{
		Title:      "Weekly Sync",
		Transcript: "[00:00] Hello",
		Notes:      "- shipped v2",
		Actions:    []*entities.ActionItem{a1, nil, a2},
	}
}

func TestBuildDocument(t *testing.T) {
	blocks := BuildDocument(sampleRequest(), fixedNow)

	want := []Block{
		{BlockTitle, "Weekly Sync"},
		{BlockMeta, "Generated: 10/24/2025, 3:04:05 PM"},
		{BlockHeading, "Transcript"},
		{BlockParagraph, "[00:00] Hello"},
		{BlockHeading, "Notes"},
		{BlockParagraph, "- shipped v2"},
		{BlockHeading, "Action Items"},
		{BlockActionText, "1. Send the deck"},
		{BlockActionMeta, "Assignee: Ana | Due: 2025-10-25"},
		{BlockActionText, "2. Book a room"},
		{BlockActionMeta, "Assignee: Unassigned | Due: Not set"},
	}
	assert.Equal(t, want, blocks)
}

func TestBuildDocument_OmitsEmptySections(t *testing.T) {
	blocks := BuildDocument(Request{Title: "  ", Notes: " \n"}, fixedNow)
	require.Len(t, blocks, 2)
	assert.Equal(t, entities.DefaultMeetingTitle, blocks[0].Text)
}

func TestFilename(t *testing.T) {
	ms := "1761318245000"
	assert.Equal(t, "Weekly_Sync_"+ms+".pdf", Filename("Weekly Sync", fixedNow, "pdf"))
	assert.Equal(t, "a_b_"+ms+".docx", Filename("a \t\n b", fixedNow, "docx"))
	assert.Equal(t, "_etc_passwd_"+ms+".pdf", Filename("../etc/passwd", fixedNow, "pdf"))
	assert.Equal(t, "Q3_review_"+ms+".pdf", Filename("Q3 review...", fixedNow, "pdf"))
	assert.Equal(t, "Meeting_"+ms+".pdf", Filename("   ", fixedNow, "pdf"))
	assert.Equal(t, "C__notes_"+ms+".pdf", Filename(`C:\notes`, fixedNow, "pdf"))
}

func TestPDFRenderer(t *testing.T) {
	data, err := PDFRenderer{}.Render(BuildDocument(sampleRequest(), fixedNow))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFRenderer_NonLatinText(t *testing.T) {
	req := Request{Title: "Réunion – café", Notes: "naïve “quotes”"}
	_, err := PDFRenderer{}.Render(BuildDocument(req, fixedNow))
	require.NoError(t, err)
}

func TestWordRenderer(t *testing.T) {
	data, err := WordRenderer{}.Render(BuildDocument(sampleRequest(), fixedNow))
	require.NoError(t, err)
	// docx is a zip container
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func newTestService(t *testing.T) (*exportService, *storage.LocalStore) {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	svc := NewExportService(store, nil, nil).(*exportService)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestExport(t *testing.T) {
	svc, store := newTestService(t)

	res, err := svc.Export(context.Background(), PDFRenderer{}, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "Weekly_Sync_1761318245000.pdf", res.Filename)
	assert.Equal(t, "/exports/Weekly_Sync_1761318245000.pdf", res.URL)

	rc, info, err := store.Open(context.Background(), res.Filename)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	assert.Equal(t, int64(len(body)), info.Size)
}

func TestExport_ConcurrentSameTitleNeverOverwrites(t *testing.T) {
	svc, _ := newTestService(t)

	const n = 8
	var wg sync.WaitGroup
	names := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Export(context.Background(), WordRenderer{}, Request{Title: "Same"})
			if assert.NoError(t, err) {
				names <- res.Filename
			}
		}()
	}
	wg.Wait()
	close(names)

	seen := map[string]bool{}
	for name := range names {
		assert.False(t, seen[name], "duplicate filename %s", name)
		assert.True(t, strings.HasPrefix(name, "Same_1761318245000"))
		seen[name] = true
	}
	assert.Len(t, seen, n)
}

type failingRenderer struct{ PDFRenderer }

func (failingRenderer) Render([]Block) ([]byte, error) { return nil, stdErrors.New("font missing") }

func TestExport_RenderFailure(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Export(context.Background(), failingRenderer{}, sampleRequest())

	var ae errors.AppError
	require.True(t, stdErrors.As(err, &ae))
	assert.Equal(t, errors.ErrorCode_EXPORT_FAILED, ae.Code)
	assert.Equal(t, "Failed to generate PDF", ae.Message)
}
