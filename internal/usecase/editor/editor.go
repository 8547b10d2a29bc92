package editor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	aiuse "github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	ucErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

// Export formats
const (
	FormatPDF  = "pdf"
	FormatWord = "word"
)

// templateStyle is the summary style used for template and short summary prompts
const templateStyle = "professional"

// API is the subset of the HTTP API the editor drives
type API interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (*relay.TranscribeResponse, error)
	GenerateSummary(ctx context.Context, transcript, style string) (string, error)
	ExtractActions(ctx context.Context, transcript string) ([]*meeting.ActionResponse, error)
	ExportPDF(ctx context.Context, req relay.ExportRequest) (*relay.ExportResponse, error)
	ExportWord(ctx context.Context, req relay.ExportRequest) (*relay.ExportResponse, error)
	Download(ctx context.Context, exportURL string, w io.Writer) (int64, error)
	CreateShareLink(ctx context.Context, meetingID string) (*relay.CreateShareResponse, error)
	SaveMeeting(ctx context.Context, id string, req meeting.SaveMeetingRequest) (*meeting.MeetingResponse, error)
	ReplaceActions(ctx context.Context, id string, actions []meeting.ActionInput) ([]*meeting.ActionResponse, error)
}

// SaveOptions controls what a save writes
type SaveOptions struct {
	UserNotes      string
	Sections       map[string]string
	ElapsedSeconds int
	KeepTranscript bool
	KeepNotes      bool
	SaveActions    bool
}

// Editor orchestrates the capture, extraction, export and share flow for
// one meeting held in a State
type Editor struct {
	api    API
	logger *zap.Logger
}

// New creates an editor on top of api
func New(api API, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{api: api, logger: logger}
}

// Transcribe uploads audio and stores the transcript on the open meeting
func (e *Editor) Transcribe(ctx context.Context, s State, audio io.Reader, filename string) (State, error) {
	if s.Meeting == nil {
		return s, ucErrors.ErrNoMeeting
	}
	if audio == nil {
		return s, ucErrors.ErrNoAudio
	}

	start := time.Now()
	res, err := e.api.Transcribe(ctx, audio, filename)
	if err != nil {
		return s, fmt.Errorf("transcription failed: %w", err)
	}
	e.logger.Info("editor.transcribed",
		zap.String("meeting_id", s.Meeting.ID.String()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("chars", len(res.Transcript)),
	)
	return UpdateMeeting(s, MeetingUpdate{Transcript: &res.Transcript}), nil
}

// ExtractTemplate fills the meeting template from the transcript and merges
// the result into sections. When the template's summary section comes back
// empty a short summary is requested separately; its failure is not fatal.
func (e *Editor) ExtractTemplate(ctx context.Context, s State, sections map[string]string) (map[string]string, error) {
	if s.Meeting == nil {
		return sections, ucErrors.ErrNoMeeting
	}
	transcript := s.Meeting.Transcript
	if strings.TrimSpace(transcript) == "" {
		return sections, ucErrors.ErrNoTranscript
	}
	tmpl := entities.TemplateFor(s.Meeting.TemplateType)

	reply, err := e.api.GenerateSummary(ctx, aiuse.BuildTemplatePrompt(transcript, tmpl.SectionIDs()), templateStyle)
	if err != nil {
		return sections, fmt.Errorf("failed to extract details: %w", err)
	}
	extracted, err := aiuse.ParseSections(reply)
	if err != nil {
		return sections, fmt.Errorf("%w: %v", ucErrors.ErrUnparsedReply, err)
	}

	if extracted[tmpl.SummaryKey] == "" {
		summary, err := e.api.GenerateSummary(ctx, aiuse.BuildShortSummaryPrompt(transcript, string(tmpl.Type)), templateStyle)
		if err != nil {
			e.logger.Warn("editor.summary_fallback_failed",
				zap.String("template", string(tmpl.Type)),
				zap.Error(err),
			)
		} else {
			extracted[tmpl.SummaryKey] = summary
		}
	}
	return MergeSections(sections, extracted), nil
}

// ExtractActions replaces the action list with items extracted from the transcript
func (e *Editor) ExtractActions(ctx context.Context, s State) (State, error) {
	if s.Meeting == nil || strings.TrimSpace(s.Meeting.Transcript) == "" {
		return s, ucErrors.ErrNoTranscript
	}
	got, err := e.api.ExtractActions(ctx, s.Meeting.Transcript)
	if err != nil {
		return s, fmt.Errorf("failed to extract actions: %w", err)
	}
	return SetActions(s, actionsFromResponses(got)), nil
}

// Export renders the meeting in format and, when w is set, downloads the document into it
func (e *Editor) Export(ctx context.Context, s State, format string, notes string, w io.Writer) (*relay.ExportResponse, error) {
	req := relay.ExportRequest{Title: "Meeting", Actions: actionInputs(s.Actions), Notes: notes}
	if s.Meeting != nil {
		if s.Meeting.Title != "" {
			req.Title = s.Meeting.Title
		}
		req.Transcript = s.Meeting.Transcript
	}

	var (
		res *relay.ExportResponse
		err error
	)
	switch format {
	case FormatPDF:
		res, err = e.api.ExportPDF(ctx, req)
	case FormatWord:
		res, err = e.api.ExportWord(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %q", ucErrors.ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s export failed: %w", format, err)
	}

	if w != nil {
		if _, err := e.api.Download(ctx, res.URL, w); err != nil {
			return res, fmt.Errorf("failed to download %s: %w", res.Filename, err)
		}
	}
	return res, nil
}

// Share creates a share link for the open meeting
func (e *Editor) Share(ctx context.Context, s State) (*relay.CreateShareResponse, error) {
	if s.Meeting == nil {
		return nil, ucErrors.ErrNoMeeting
	}
	return e.api.CreateShareLink(ctx, s.Meeting.ID.String())
}

// Save upserts the open meeting. Transcript and notes are only written when
// their keep flag is set.
func (e *Editor) Save(ctx context.Context, s State, opts SaveOptions) (State, error) {
	if s.Meeting == nil {
		return s, ucErrors.ErrNoMeeting
	}
	m := s.Meeting

	title := m.Title
	if title == "" {
		title = entities.DefaultMeetingTitle
	}
	req := meeting.SaveMeetingRequest{
		Title:           title,
		SpeakerTags:     m.Speakers(),
		DurationMinutes: opts.ElapsedSeconds / 60,
		IsBillable:      m.IsBillable,
		TemplateType:    string(entities.NormalizeTemplateType(string(m.TemplateType))),
	}
	if opts.KeepTranscript {
		transcript := m.Transcript
		req.Transcript = &transcript
	}
	if opts.KeepNotes {
		notes := FormattedNotes(opts.UserNotes, entities.TemplateFor(m.TemplateType), opts.Sections)
		req.Notes = &notes
	}

	saved, err := e.api.SaveMeeting(ctx, m.ID.String(), req)
	if err != nil {
		return s, fmt.Errorf("failed to save meeting: %w", err)
	}
	next := SetCurrentMeeting(s, meetingFromResponse(saved, m))

	if opts.SaveActions {
		items, err := e.api.ReplaceActions(ctx, m.ID.String(), actionInputs(s.Actions))
		if err != nil {
			return next, fmt.Errorf("failed to save action items: %w", err)
		}
		next = SetActions(next, actionsFromResponses(items))
	}
	return next, nil
}

// actionsFromResponses applies client defaults: fresh ids, "No description",
// "Unassigned", not completed
func actionsFromResponses(in []*meeting.ActionResponse) []*entities.ActionItem {
	out := make([]*entities.ActionItem, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		item := entities.NewActionItem(a.ActionText)
		if id, err := uuid.Parse(a.ID); err == nil {
			item.ID = id
		}
		if strings.TrimSpace(item.ActionText) == "" {
			item.ActionText = "No description"
		}
		if strings.TrimSpace(a.Assignee) != "" {
			item.Assignee = a.Assignee
		}
		if a.DueDate != nil {
			item.DueDate = *a.DueDate
		}
		item.Speaker = a.Speaker
		item.Completed = a.Completed
		out = append(out, item)
	}
	return out
}

func actionInputs(in []*entities.ActionItem) []meeting.ActionInput {
	out := make([]meeting.ActionInput, 0, len(in))
	for _, a := range in {
		out = append(out, meeting.ActionInput{
			ID:         a.ID.String(),
			ActionText: a.ActionText,
			Assignee:   a.Assignee,
			DueDate:    a.DueDate,
			Speaker:    a.Speaker,
			Completed:  a.Completed,
		})
	}
	return out
}

// meetingFromResponse maps a saved meeting back onto the entity, keeping
// fallback values for anything the response leaves out
func meetingFromResponse(r *meeting.MeetingResponse, fallback *entities.Meeting) *entities.Meeting {
	m := cloneMeeting(fallback)
	if r == nil {
		return m
	}
	if id, err := uuid.Parse(r.ID); err == nil {
		m.ID = id
	}
	m.UserID = r.UserID
	m.Title = r.Title
	m.Transcript = r.Transcript
	m.Notes = r.Notes
	if r.SpeakerTags != nil {
		m.SpeakerTags = datatypes.NewJSONType(r.SpeakerTags)
	}
	m.DurationMinutes = r.DurationMinutes
	m.IsBillable = r.IsBillable
	m.TemplateType = entities.NormalizeTemplateType(r.TemplateType)
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
	return m
}
