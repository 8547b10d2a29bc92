package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting is a saved recording session with its transcript and notes
type Meeting struct {
	ID              uuid.UUID                            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          string                               `gorm:"type:varchar(255);not null;index" json:"user_id"`
	Title           string                               `gorm:"type:varchar(255);not null;default:'Untitled Meeting'" json:"title"`
	Transcript      string                               `gorm:"type:text;not null;default:''" json:"transcript"`
	Notes           string                               `gorm:"type:text;not null;default:''" json:"notes"`
	SpeakerTags     datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null;default:'{}'" json:"speaker_tags"`
	DurationMinutes int                                  `gorm:"not null;default:0" json:"duration_minutes"`
	IsBillable      bool                                 `gorm:"not null;default:false" json:"is_billable"`
	TemplateType    TemplateType                         `gorm:"type:varchar(32);not null;default:'professional'" json:"template_type"`
	CreatedAt       time.Time                            `gorm:"default:now()" json:"created_at"`
	UpdatedAt       time.Time                            `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates an empty meeting owned by userID
func NewMeeting(userID string) *Meeting {
	now := time.Now().UTC()
	return &Meeting{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        DefaultMeetingTitle,
		SpeakerTags:  datatypes.NewJSONType(map[string]string{}),
		TemplateType: TemplateProfessional,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DefaultMeetingTitle is used when a meeting is saved without a title
const DefaultMeetingTitle = "Untitled Meeting"

// Speakers returns a copy of the speaker label to display name mapping
func (m *Meeting) Speakers() map[string]string {
	out := make(map[string]string)
	for k, v := range m.SpeakerTags.Data() {
		out[k] = v
	}
	return out
}

// TagSpeaker sets the display name for a speaker label. Labels are unique
// keys so re-tagging overwrites the previous name.
func (m *Meeting) TagSpeaker(label, name string) {
	tags := m.Speakers()
	tags[label] = name
	m.SpeakerTags = datatypes.NewJSONType(tags)
}
