package relay

import "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"

// SummaryRequest is the generate-summary body
type SummaryRequest struct {
	Transcript string `json:"transcript"`
	Style      string `json:"style" validate:"omitempty,max=32"`
}

// ActionsRequest is the extract-actions body
type ActionsRequest struct {
	Transcript string `json:"transcript"`
}

// ExportRequest is the export-pdf / export-word body
type ExportRequest struct {
	Title      string                `json:"title" validate:"max=255"`
	Transcript string                `json:"transcript"`
	Notes      string                `json:"notes"`
	Actions    []meeting.ActionInput `json:"actions" validate:"max=500,dive"`
}

// CreateShareRequest is the create-share-link body
type CreateShareRequest struct {
	MeetingID string `json:"meetingId"`
}

// MembershipRequest is the validate-membership body
type MembershipRequest struct {
	MemberID string `json:"memberId"`
}
