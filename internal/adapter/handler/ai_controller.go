package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	aiuse "github.com/johnquangdev/meeting-notes/internal/usecase/ai"
)

// AIController handles the completion relays
type AIController struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, logger: logger}
}

// GenerateSummary relays a transcript for style-specific notes
// @Summary      Generate notes from a transcript
// @Description  Sends the transcript to the completion API with a style instruction and returns the raw completion
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      relay.SummaryRequest    true  "Transcript and style (shorter, longer, casual, professional)"
// @Success      200      {object}  relay.SummaryResponse
// @Failure      400      {object}  common.ErrorResponse    "No transcript provided"
// @Failure      500      {object}  common.ErrorResponse    "API key missing or upstream failure"
// @Router       /api/generate-summary [post]
func (ac *AIController) GenerateSummary(c echo.Context) error {
	var req relay.SummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload(err))
	}

	summary, err := ac.svc.GenerateSummary(c.Request().Context(), req.Transcript, req.Style)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, relay.SummaryResponse{Success: true, Summary: summary})
}

// ExtractActions relays a transcript for action items
// @Summary      Extract action items
// @Description  Asks the completion API for a JSON action list and parses it permissively. Unparseable replies yield an empty list.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      relay.ActionsRequest    true  "Transcript"
// @Success      200      {object}  relay.ActionsResponse
// @Failure      400      {object}  map[string]interface{}  "No transcript provided (actions: [])"
// @Failure      500      {object}  map[string]interface{}  "API key missing or upstream failure (actions: [])"
// @Router       /api/extract-actions [post]
func (ac *AIController) ExtractActions(c echo.Context) error {
	emptyActions := map[string]interface{}{"actions": []*meeting.ActionResponse{}}

	var req relay.ActionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleErrorWith(ac.logger, c, errors.ErrInvalidPayload(err), emptyActions)
	}

	actions, err := ac.svc.ExtractActions(c.Request().Context(), req.Transcript)
	if err != nil {
		return HandleErrorWith(ac.logger, c, err, emptyActions)
	}
	return HandleSuccess(ac.logger, c, relay.ActionsResponse{
		Success: true,
		Actions: presenter.ToActionResponses(actions),
	})
}
