package meeting

// SaveMeetingRequest is the PUT /api/meetings/:id body. Omitting transcript
// or notes keeps the stored value.
type SaveMeetingRequest struct {
	Title           string            `json:"title" validate:"max=255"`
	Transcript      *string           `json:"transcript,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	SpeakerTags     map[string]string `json:"speaker_tags" validate:"max=100,dive,keys,min=1,max=64,endkeys,max=255"`
	DurationMinutes int               `json:"duration_minutes" validate:"min=0"`
	IsBillable      bool              `json:"is_billable"`
	TemplateType    string            `json:"template_type" validate:"max=32"`
}

// ReplaceActionsRequest is the PUT /api/meetings/:id/actions body
type ReplaceActionsRequest struct {
	Actions []ActionInput `json:"actions" validate:"max=500,dive"`
}

// ActionInput is an action item as sent by clients
type ActionInput struct {
	ID         string `json:"id" validate:"omitempty,max=64"`
	ActionText string `json:"action_text" validate:"max=2000"`
	Assignee   string `json:"assignee" validate:"max=255"`
	DueDate    string `json:"due_date" validate:"max=64"`
	Speaker    string `json:"speaker" validate:"max=255"`
	Completed  bool   `json:"completed"`
}
