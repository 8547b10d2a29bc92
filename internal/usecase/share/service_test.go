package share

import (
	"context"
	stdErrors "errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

type memoryShares struct {
	mu       sync.Mutex
	meetings map[uuid.UUID]*entities.Meeting
	shares   map[string]*entities.MeetingShare
	findErr  error
}

func newMemoryShares(meetings ...*entities.Meeting) *memoryShares {
	r := &memoryShares{
		meetings: map[uuid.UUID]*entities.Meeting{},
		shares:   map[string]*entities.MeetingShare{},
	}
	for _, m := range meetings {
		r.meetings[m.ID] = m
	}
	return r
}

func (r *memoryShares) Create(_ context.Context, s *entities.MeetingShare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meetings[s.MeetingID]; !ok {
		return stdErrors.New(`insert or update on table "meeting_shares" violates foreign key constraint`)
	}
	r.shares[s.ShareToken] = s
	return nil
}

func (r *memoryShares) FindByToken(_ context.Context, token string) (*entities.MeetingShare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.shares[token]
	if !ok {
		return nil, nil
	}
	out := *s
	out.Meeting = r.meetings[s.MeetingID]
	return &out, nil
}

func newTestService(repo *memoryShares, now *time.Time) *shareService {
	svc := NewShareService(repo, "https://notes.example.com/", nil, nil).(*shareService)
	svc.now = func() time.Time { return *now }
	return svc
}

func appErr(t *testing.T, err error) errors.AppError {
	t.Helper()
	var ae errors.AppError
	require.True(t, stdErrors.As(err, &ae), "expected AppError, got %v", err)
	return ae
}

func TestCreate(t *testing.T) {
	meeting := entities.NewMeeting("user-1")
	repo := newMemoryShares(meeting)
	now := time.Date(2025, 10, 24, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	svc := newTestService(repo, &now)

	link, err := svc.Create(context.Background(), meeting.ID.String())
	require.NoError(t, err)

	_, err = uuid.Parse(link.Token)
	require.NoError(t, err)
	assert.Equal(t, "https://notes.example.com/share/"+link.Token, link.ShareLink)
	assert.Equal(t, "2025-10-31T10:00:00.000Z", link.ExpiresAt)

	stored := repo.shares[link.Token]
	require.NotNil(t, stored)
	assert.Equal(t, 604800*time.Second, stored.ExpiresAt.Sub(now))
}

func TestCreate_TokensAreUnique(t *testing.T) {
	meeting := entities.NewMeeting("u")
	now := time.Now()
	svc := newTestService(newMemoryShares(meeting), &now)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		link, err := svc.Create(context.Background(), meeting.ID.String())
		require.NoError(t, err)
		assert.False(t, seen[link.Token])
		seen[link.Token] = true
	}
}

func TestCreate_Invalid(t *testing.T) {
	now := time.Now()
	svc := newTestService(newMemoryShares(), &now)

	_, err := svc.Create(context.Background(), "")
	assert.Equal(t, http.StatusBadRequest, appErr(t, err).HTTPCode)

	_, err = svc.Create(context.Background(), "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, appErr(t, err).HTTPCode)

	_, err = svc.Create(context.Background(), uuid.NewString())
	ae := appErr(t, err)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPCode)
	assert.Equal(t, errors.ErrorCode_SHARE_CREATE_FAILED, ae.Code)
}

func TestResolve_Lifecycle(t *testing.T) {
	meeting := entities.NewMeeting("user-1")
	meeting.Title = "Design review"
	repo := newMemoryShares(meeting)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &now)

	link, err := svc.Create(context.Background(), meeting.ID.String())
	require.NoError(t, err)

	got, err := svc.Resolve(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, "Design review", got.Title)

	// still valid at exactly the expiry instant
	now = now.Add(entities.ShareLinkTTL)
	_, err = svc.Resolve(context.Background(), link.Token)
	require.NoError(t, err)

	now = now.Add(time.Millisecond)
	_, err = svc.Resolve(context.Background(), link.Token)
	ae := appErr(t, err)
	assert.Equal(t, http.StatusGone, ae.HTTPCode)
	assert.Equal(t, "Share link has expired", ae.Message)

	// expired rows are kept
	assert.Contains(t, repo.shares, link.Token)
}

func TestResolve_NotFound(t *testing.T) {
	now := time.Now()
	repo := newMemoryShares()
	svc := newTestService(repo, &now)

	_, err := svc.Resolve(context.Background(), uuid.NewString())
	ae := appErr(t, err)
	assert.Equal(t, http.StatusNotFound, ae.HTTPCode)
	assert.Equal(t, "Share link not found", ae.Message)

	repo.findErr = stdErrors.New("connection refused")
	_, err = svc.Resolve(context.Background(), "t")
	assert.Equal(t, errors.ErrorCode_SHARE_RESOLVE_FAILED, appErr(t, err).Code)
}
