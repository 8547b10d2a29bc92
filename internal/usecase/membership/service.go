package membership

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
)

// Result is the validation response body
type Result struct {
	Valid       bool   `json:"valid"`
	MemberID    string `json:"memberId"`
	ValidatedAt string `json:"validatedAt"`
}

// Validator checks a marketplace membership id
type Validator interface {
	Validate(ctx context.Context, memberID string) (*Result, error)
}

// acceptAll approves every non-empty member id
type acceptAll struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewAcceptAllValidator returns a validator that approves every member id.
// TODO: verify against the marketplace membership API once credentials are provisioned.
func NewAcceptAllValidator(logger *zap.Logger) Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &acceptAll{logger: logger, now: time.Now}
}

func (v *acceptAll) Validate(_ context.Context, memberID string) (*Result, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, errors.ErrInvalidArgument("memberId required")
	}
	v.logger.Debug("membership accepted", zap.String("member_id", memberID))
	return &Result{
		Valid:       true,
		MemberID:    memberID,
		ValidatedAt: v.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}, nil
}
