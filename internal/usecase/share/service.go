package share

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
)

// ExpiresAtLayout renders expiry as an ISO-8601 UTC instant with milliseconds
const ExpiresAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Link is the create response body
type Link struct {
	ShareLink string `json:"shareLink"`
	ExpiresAt string `json:"expiresAt"`
	Token     string `json:"token"`
}

// Service mints and resolves share links
type Service interface {
	Create(ctx context.Context, meetingID string) (*Link, error)
	Resolve(ctx context.Context, token string) (*entities.Meeting, error)
}

type shareService struct {
	repo        repositories.ShareRepository
	frontendURL string
	ttl         time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewShareService creates the share relay. Links point at frontendURL/share/<token>.
func NewShareService(repo repositories.ShareRepository, frontendURL string, m *metrics.Metrics, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &shareService{
		repo:        repo,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		ttl:         entities.ShareLinkTTL,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// Create persists a fresh token expiring one TTL from now. The store rejects
// tokens for meetings that do not exist.
func (s *shareService) Create(ctx context.Context, meetingID string) (*Link, error) {
	meetingID = strings.TrimSpace(meetingID)
	if meetingID == "" {
		return nil, errors.ErrInvalidArgument("Meeting ID is required")
	}
	id, err := uuid.Parse(meetingID)
	if err != nil {
		return nil, errors.ErrInvalidArgument("Meeting ID is not a valid id")
	}

	now := s.now().UTC()
	share := &entities.MeetingShare{
		ID:         uuid.New(),
		MeetingID:  id,
		ShareToken: uuid.NewString(),
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
	}
	if err := s.repo.Create(ctx, share); err != nil {
		s.logger.Error("failed to create share link",
			zap.String("meeting_id", meetingID),
			zap.Error(err),
		)
		return nil, errors.ErrShareCreateFailed(err)
	}

	s.metrics.ShareCreated()
	s.logger.Info("share link created",
		zap.String("meeting_id", meetingID),
		zap.Time("expires_at", share.ExpiresAt),
	)
	return &Link{
		ShareLink: s.frontendURL + "/share/" + share.ShareToken,
		ExpiresAt: share.ExpiresAt.UTC().Format(ExpiresAtLayout),
		Token:     share.ShareToken,
	}, nil
}

// Resolve returns the shared meeting. Expiry is checked lazily here; expired
// rows stay in the table.
func (s *shareService) Resolve(ctx context.Context, token string) (*entities.Meeting, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.ErrShareNotFound()
	}

	share, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, errors.ErrShareResolveFailed(err)
	}
	if share == nil || share.Meeting == nil {
		return nil, errors.ErrShareNotFound()
	}
	if share.IsExpired(s.now()) {
		return nil, errors.ErrShareExpired()
	}
	return share.Meeting, nil
}
