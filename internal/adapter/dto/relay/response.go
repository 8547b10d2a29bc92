package relay

import (
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
)

// TranscribeResponse is returned by POST /api/transcribe
type TranscribeResponse struct {
	Success    bool   `json:"success"`
	Transcript string `json:"transcript"`
	Text       string `json:"text"`
}

// SummaryResponse is returned by POST /api/generate-summary
type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}

// ActionsResponse is returned by POST /api/extract-actions
type ActionsResponse struct {
	Success bool                      `json:"success"`
	Actions []*meeting.ActionResponse `json:"actions"`
}

// ExportResponse is returned by the export endpoints
type ExportResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// CreateShareResponse is returned by POST /api/create-share-link
type CreateShareResponse struct {
	Success   bool   `json:"success"`
	ShareLink string `json:"shareLink"`
	ExpiresAt string `json:"expiresAt"`
	Token     string `json:"token"`
}

// SharedMeetingResponse is returned by GET /api/share/:token
type SharedMeetingResponse struct {
	Success bool                     `json:"success"`
	Meeting *meeting.MeetingResponse `json:"meeting"`
}

// MembershipResponse is returned by POST /api/validate-membership
type MembershipResponse struct {
	Valid       bool   `json:"valid"`
	MemberID    string `json:"memberId"`
	ValidatedAt string `json:"validatedAt"`
}
