package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	dto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/usecase/auth"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// Meeting serves the caller's saved meetings
type Meeting struct {
	svc    meeting.Service
	logger *zap.Logger
}

// NewMeeting creates the meeting handler
func NewMeeting(svc meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// List godoc
// @Summary      List meetings
// @Description  Returns the caller's meetings, most recently updated first
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MeetingListResponse
// @Failure      401  {object}  common.ErrorResponse
// @Router       /api/meetings [get]
func (h *Meeting) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetings, err := h.svc.List(c.Request().Context(), p.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.MeetingListResponse{
		Success:  true,
		Meetings: presenter.ToMeetingListResponse(meetings),
	})
}

// Get godoc
// @Summary      Get meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  dto.MeetingDetailResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	p, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	m, actions, err := h.svc.Get(c.Request().Context(), p.UserID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.MeetingDetailResponse{
		Success: true,
		Meeting: presenter.ToMeetingResponse(m),
		Actions: presenter.ToActionResponses(actions),
	})
}

// Save godoc
// @Summary      Save meeting
// @Description  Creates or updates a meeting. Omitted transcript or notes keep the stored value.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                  true  "Meeting ID"
// @Param        request  body      dto.SaveMeetingRequest  true  "Meeting"
// @Success      200      {object}  dto.SaveMeetingResponse
// @Failure      400      {object}  common.ErrorResponse
// @Router       /api/meetings/{id} [put]
func (h *Meeting) Save(c echo.Context) error {
	p, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req dto.SaveMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	m, err := h.svc.Save(c.Request().Context(), p.UserID, id, meeting.SaveInput{
		Title:           req.Title,
		Transcript:      req.Transcript,
		Notes:           req.Notes,
		SpeakerTags:     req.SpeakerTags,
		DurationMinutes: req.DurationMinutes,
		IsBillable:      req.IsBillable,
		TemplateType:    req.TemplateType,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.SaveMeetingResponse{
		Success: true,
		Meeting: presenter.ToMeetingResponse(m),
	})
}

// Delete godoc
// @Summary      Delete meeting
// @Description  Deletes the meeting with its action items and share links
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{id} [delete]
func (h *Meeting) Delete(c echo.Context) error {
	p, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), p.UserID, id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.SuccessResponse{Success: true})
}

// ReplaceActions godoc
// @Summary      Replace action items
// @Description  Replaces every action item of the meeting with the given list
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "Meeting ID"
// @Param        request  body      dto.ReplaceActionsRequest  true  "Actions"
// @Success      200      {object}  dto.ActionListResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /api/meetings/{id}/actions [put]
func (h *Meeting) ReplaceActions(c echo.Context) error {
	p, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req dto.ReplaceActionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	items, err := h.svc.ReplaceActions(c.Request().Context(), p.UserID, id, presenter.FromActionInputs(req.Actions))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.ActionListResponse{
		Success: true,
		Actions: presenter.ToActionResponses(items),
	})
}

// target resolves the caller and the :id path parameter
func (h *Meeting) target(c echo.Context) (*auth.Principal, uuid.UUID, error) {
	p, err := principal(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, uuid.Nil, errors.ErrMeetingNotFound(c.Param("id"))
	}
	return p, id, nil
}
