package entities

import (
	"time"

	"github.com/google/uuid"
)

// ShareLinkTTL is how long a share link stays valid after creation
const ShareLinkTTL = 7 * 24 * time.Hour

// MeetingShare is a public read-only link to a meeting. Expired rows are
// never deleted; expiry is checked on read.
type MeetingShare struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID  uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Meeting    *Meeting  `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	ShareToken string    `gorm:"type:varchar(64);unique;not null" json:"share_token"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingShare
func (MeetingShare) TableName() string {
	return "meeting_shares"
}

// IsExpired reports whether the link has expired at now. A link is still
// valid at exactly its expiry instant.
func (s *MeetingShare) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
