package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/usecase/membership"
	"github.com/johnquangdev/meeting-notes/internal/usecase/share"
)

// Share handles share links and membership validation
type Share struct {
	svc        share.Service
	membership membership.Validator
	logger     *zap.Logger
}

// NewShare creates the share handler
func NewShare(svc share.Service, validator membership.Validator, logger *zap.Logger) *Share {
	return &Share{svc: svc, membership: validator, logger: logger}
}

// Create mints a share link
// @Summary      Create share link
// @Description  Creates a read-only link to a meeting valid for 7 days
// @Tags         Share
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      relay.CreateShareRequest  true  "Meeting id"
// @Success      200      {object}  relay.CreateShareResponse
// @Failure      400      {object}  common.ErrorResponse  "Meeting ID is required"
// @Failure      500      {object}  common.ErrorResponse  "Failed to create share link"
// @Router       /api/create-share-link [post]
func (h *Share) Create(c echo.Context) error {
	var req relay.CreateShareRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	link, err := h.svc.Create(c.Request().Context(), req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, relay.CreateShareResponse{
		Success:   true,
		ShareLink: link.ShareLink,
		ExpiresAt: link.ExpiresAt,
		Token:     link.Token,
	})
}

// Resolve returns the meeting behind a share token
// @Summary      Open shared meeting
// @Description  Resolves a share token. Expired links return 410 and are kept.
// @Tags         Share
// @Produce      json
// @Param        token  path      string  true  "Share token"
// @Success      200    {object}  relay.SharedMeetingResponse
// @Failure      404    {object}  common.ErrorResponse  "Share link not found"
// @Failure      410    {object}  common.ErrorResponse  "Share link has expired"
// @Router       /api/share/{token} [get]
func (h *Share) Resolve(c echo.Context) error {
	m, err := h.svc.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, relay.SharedMeetingResponse{
		Success: true,
		Meeting: presenter.ToMeetingResponse(m),
	})
}

// ValidateMembership checks a marketplace membership id
// @Summary      Validate membership
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      relay.MembershipRequest  true  "Member id"
// @Success      200      {object}  relay.MembershipResponse
// @Failure      400      {object}  common.ErrorResponse  "memberId required"
// @Router       /api/validate-membership [post]
func (h *Share) ValidateMembership(c echo.Context) error {
	var req relay.MembershipRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	res, err := h.membership.Validate(c.Request().Context(), req.MemberID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, relay.MembershipResponse{
		Valid:       res.Valid,
		MemberID:    res.MemberID,
		ValidatedAt: res.ValidatedAt,
	})
}
