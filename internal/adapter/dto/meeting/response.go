package meeting

import "time"

// MeetingResponse is the public view of a saved meeting
type MeetingResponse struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Title           string            `json:"title"`
	Transcript      string            `json:"transcript"`
	Notes           string            `json:"notes"`
	SpeakerTags     map[string]string `json:"speaker_tags"`
	DurationMinutes int               `json:"duration_minutes"`
	IsBillable      bool              `json:"is_billable"`
	TemplateType    string            `json:"template_type"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ActionResponse is the public view of an action item. DueDate is null when unset.
type ActionResponse struct {
	ID         string  `json:"id"`
	ActionText string  `json:"action_text"`
	Assignee   string  `json:"assignee"`
	DueDate    *string `json:"due_date"`
	Speaker    string  `json:"speaker"`
	Completed  bool    `json:"completed"`
}

// MeetingListResponse is returned by GET /api/meetings
type MeetingListResponse struct {
	Success  bool               `json:"success"`
	Meetings []*MeetingResponse `json:"meetings"`
}

// MeetingDetailResponse is returned by GET /api/meetings/:id
type MeetingDetailResponse struct {
	Success bool              `json:"success"`
	Meeting *MeetingResponse  `json:"meeting"`
	Actions []*ActionResponse `json:"actions"`
}

// SaveMeetingResponse is returned by PUT /api/meetings/:id
type SaveMeetingResponse struct {
	Success bool             `json:"success"`
	Meeting *MeetingResponse `json:"meeting"`
}

// ActionListResponse is returned by PUT /api/meetings/:id/actions
type ActionListResponse struct {
	Success bool              `json:"success"`
	Actions []*ActionResponse `json:"actions"`
}
