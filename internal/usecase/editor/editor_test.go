package editor

import (
	"bytes"
	"context"
	stdErrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	ucErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

type fakeAPI struct {
	summaries   []string
	summaryErrs []error
	prompts     []string
	actions     []*meeting.ActionResponse
	exported    *relay.ExportRequest
	saved       *meeting.SaveMeetingRequest
	replaced    []meeting.ActionInput
}

func (f *fakeAPI) Transcribe(_ context.Context, audio io.Reader, filename string) (*relay.TranscribeResponse, error) {
	b, _ := io.ReadAll(audio)
	return &relay.TranscribeResponse{Success: true, Transcript: "[00:00] " + string(b), Text: string(b)}, nil
}

func (f *fakeAPI) GenerateSummary(_ context.Context, transcript, style string) (string, error) {
	i := len(f.prompts)
	f.prompts = append(f.prompts, transcript)
	if i < len(f.summaryErrs) && f.summaryErrs[i] != nil {
		return "", f.summaryErrs[i]
	}
	if i < len(f.summaries) {
		return f.summaries[i], nil
	}
	return "", nil
}

func (f *fakeAPI) ExtractActions(context.Context, string) ([]*meeting.ActionResponse, error) {
	return f.actions, nil
}

func (f *fakeAPI) ExportPDF(_ context.Context, req relay.ExportRequest) (*relay.ExportResponse, error) {
	f.exported = &req
	return &relay.ExportResponse{Success: true, Filename: "Meeting_1.pdf", URL: "/exports/Meeting_1.pdf"}, nil
}

func (f *fakeAPI) ExportWord(_ context.Context, req relay.ExportRequest) (*relay.ExportResponse, error) {
	f.exported = &req
	return &relay.ExportResponse{Success: true, Filename: "Meeting_1.docx", URL: "/exports/Meeting_1.docx"}, nil
}

func (f *fakeAPI) Download(_ context.Context, _ string, w io.Writer) (int64, error) {
	n, err := w.Write([]byte("%PDF"))
	return int64(n), err
}

func (f *fakeAPI) CreateShareLink(_ context.Context, id string) (*relay.CreateShareResponse, error) {
	return &relay.CreateShareResponse{Success: true, Token: "tok", ShareLink: "http://app/share/tok"}, nil
}

func (f *fakeAPI) SaveMeeting(_ context.Context, id string, req meeting.SaveMeetingRequest) (*meeting.MeetingResponse, error) {
	f.saved = &req
	resp := &meeting.MeetingResponse{ID: id, UserID: "u", Title: req.Title, TemplateType: req.TemplateType}
	if req.Transcript != nil {
		resp.Transcript = *req.Transcript
	}
	if req.Notes != nil {
		resp.Notes = *req.Notes
	}
	return resp, nil
}

func (f *fakeAPI) ReplaceActions(_ context.Context, _ string, actions []meeting.ActionInput) ([]*meeting.ActionResponse, error) {
	f.replaced = actions
	out := make([]*meeting.ActionResponse, len(actions))
	for i, a := range actions {
		out[i] = &meeting.ActionResponse{ID: a.ID, ActionText: a.ActionText, Assignee: a.Assignee, Completed: a.Completed}
	}
	return out, nil
}

func openState(transcript string) State {
	m := entities.NewMeeting("u")
	m.Transcript = transcript
	return SetCurrentMeeting(State{}, m)
}

func TestTranscribe(t *testing.T) {
	ed := New(&fakeAPI{}, nil)

	_, err := ed.Transcribe(context.Background(), State{}, strings.NewReader("x"), "a.webm")
	assert.ErrorIs(t, err, ucErrors.ErrNoMeeting)

	_, err = ed.Transcribe(context.Background(), openState(""), nil, "a.webm")
	assert.ErrorIs(t, err, ucErrors.ErrNoAudio)

	s, err := ed.Transcribe(context.Background(), openState(""), strings.NewReader("hello"), "a.webm")
	require.NoError(t, err)
	assert.Equal(t, "[00:00] hello", s.Meeting.Transcript)
}

func TestExtractTemplate_FillsEmptySummary(t *testing.T) {
	api := &fakeAPI{summaries: []string{
		"Sure!\n```json\n{\"decisionsMade\":\"Ship it\",\"executiveSummary\":\"\"}\n```",
		"A short summary.",
	}}
	ed := New(api, nil)

	out, err := ed.ExtractTemplate(context.Background(), openState("[00:00] we ship"), map[string]string{"parkingLot": "later"})
	require.NoError(t, err)
	assert.Equal(t, "Ship it", out["decisionsMade"])
	assert.Equal(t, "A short summary.", out["executiveSummary"])
	assert.Equal(t, "later", out["parkingLot"])

	require.Len(t, api.prompts, 2)
	assert.Contains(t, api.prompts[0], "- meetingDetails")
	assert.Contains(t, api.prompts[1], "Create a concise professional summary (2-3 sentences)")
}

func TestExtractTemplate_SummaryFallbackFailureIgnored(t *testing.T) {
	api := &fakeAPI{
		summaries:   []string{`{"lectureSummary":""}`},
		summaryErrs: []error{nil, stdErrors.New("boom")},
	}
	ed := New(api, nil)
	s := openState("[00:00] lecture")
	s.Meeting.TemplateType = entities.TemplateAcademic

	out, err := ed.ExtractTemplate(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out["lectureSummary"])
}

func TestExtractTemplate_Errors(t *testing.T) {
	ed := New(&fakeAPI{summaries: []string{"no json here"}}, nil)

	_, err := ed.ExtractTemplate(context.Background(), openState(" "), nil)
	assert.ErrorIs(t, err, ucErrors.ErrNoTranscript)

	_, err = ed.ExtractTemplate(context.Background(), openState("text"), nil)
	assert.ErrorIs(t, err, ucErrors.ErrUnparsedReply)
}

func TestExtractActions_Defaults(t *testing.T) {
	due := "2026-01-02"
	api := &fakeAPI{actions: []*meeting.ActionResponse{
		{ID: uuid.NewString(), ActionText: "", Assignee: "", DueDate: &due},
		{ID: "not-a-uuid", ActionText: "Call Bob", Assignee: "Ana"},
	}}
	ed := New(api, nil)

	_, err := ed.ExtractActions(context.Background(), openState(""))
	assert.ErrorIs(t, err, ucErrors.ErrNoTranscript)

	s, err := ed.ExtractActions(context.Background(), openState("text"))
	require.NoError(t, err)
	require.Len(t, s.Actions, 2)
	assert.Equal(t, "No description", s.Actions[0].ActionText)
	assert.Equal(t, entities.DefaultAssignee, s.Actions[0].Assignee)
	assert.Equal(t, "2026-01-02", s.Actions[0].DueDate)
	assert.NotEqual(t, uuid.Nil, s.Actions[1].ID)
	assert.False(t, s.Actions[1].Completed)
}

func TestExport(t *testing.T) {
	api := &fakeAPI{}
	ed := New(api, nil)
	s := AddAction(openState("text"), entities.NewActionItem("Do it"))

	var buf bytes.Buffer
	res, err := ed.Export(context.Background(), s, FormatPDF, "notes", &buf)
	require.NoError(t, err)
	assert.Equal(t, "/exports/Meeting_1.pdf", res.URL)
	assert.Equal(t, "%PDF", buf.String())
	assert.Equal(t, entities.DefaultMeetingTitle, api.exported.Title)
	require.Len(t, api.exported.Actions, 1)

	_, err = ed.Export(context.Background(), s, "odt", "", nil)
	assert.ErrorIs(t, err, ucErrors.ErrUnknownFormat)
}

func TestSave_KeepChoices(t *testing.T) {
	api := &fakeAPI{}
	ed := New(api, nil)
	s := AddAction(openState("the transcript"), entities.NewActionItem("Do it"))

	next, err := ed.Save(context.Background(), s, SaveOptions{
		UserNotes:      "mine",
		ElapsedSeconds: 125,
		KeepNotes:      true,
		SaveActions:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, api.saved)
	assert.Nil(t, api.saved.Transcript)
	require.NotNil(t, api.saved.Notes)
	assert.Equal(t, "USER NOTES:\nmine\n\n", *api.saved.Notes)
	assert.Equal(t, 2, api.saved.DurationMinutes)
	assert.Len(t, api.replaced, 1)
	assert.Len(t, next.Actions, 1)

	_, err = ed.Save(context.Background(), State{}, SaveOptions{})
	assert.ErrorIs(t, err, ucErrors.ErrNoMeeting)
}

func TestShare(t *testing.T) {
	ed := New(&fakeAPI{}, nil)
	_, err := ed.Share(context.Background(), State{})
	assert.ErrorIs(t, err, ucErrors.ErrNoMeeting)

	res, err := ed.Share(context.Background(), openState(""))
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
}
