package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAssignee is used when an extracted action names nobody
const DefaultAssignee = "Unassigned"

// DueDateLayout is the only accepted due date format
const DueDateLayout = "2006-01-02"

// ActionItem is a task extracted from a transcript
type ActionItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	MeetingID  *uuid.UUID `gorm:"type:uuid;index" json:"meeting_id,omitempty"`
	ActionText string     `gorm:"type:text;not null" json:"action_text"`
	Assignee   string     `gorm:"type:varchar(255);not null;default:'Unassigned'" json:"assignee"`
	DueDate    string     `gorm:"type:varchar(10)" json:"due_date,omitempty"`
	Speaker    string     `gorm:"type:varchar(255)" json:"speaker"`
	Completed  bool       `gorm:"not null;default:false" json:"completed"`
	Position   int        `gorm:"not null;default:0" json:"-"`
	CreatedAt  time.Time  `gorm:"default:now()" json:"-"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a pending action with a fresh id
func NewActionItem(text string) *ActionItem {
	return &ActionItem{
		ID:         uuid.New(),
		ActionText: text,
		Assignee:   DefaultAssignee,
		Completed:  false,
	}
}

// ValidDueDate reports whether s is a calendar date in YYYY-MM-DD form
func ValidDueDate(s string) bool {
	if len(s) != len(DueDateLayout) {
		return false
	}
	_, err := time.Parse(DueDateLayout, s)
	return err == nil
}

// DueDateOrDefault returns the due date or "Not set"
func (a ActionItem) DueDateOrDefault() string {
	if a.DueDate == "" {
		return "Not set"
	}
	return a.DueDate
}

// AssigneeOrDefault returns the assignee or DefaultAssignee
func (a ActionItem) AssigneeOrDefault() string {
	if a.Assignee == "" {
		return DefaultAssignee
	}
	return a.Assignee
}
