package presenter

import (
	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}
	return &meeting.MeetingResponse{
		ID:              m.ID.String(),
		UserID:          m.UserID,
		Title:           m.Title,
		Transcript:      m.Transcript,
		Notes:           m.Notes,
		SpeakerTags:     m.Speakers(),
		DurationMinutes: m.DurationMinutes,
		IsBillable:      m.IsBillable,
		TemplateType:    string(m.TemplateType),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToMeetingListResponse converts meetings to their DTOs, never returning nil
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	out := make([]*meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		if m != nil {
			out = append(out, ToMeetingResponse(m))
		}
	}
	return out
}

// ToActionResponse converts an ActionItem entity to ActionResponse DTO
func ToActionResponse(a *entities.ActionItem) *meeting.ActionResponse {
	if a == nil {
		return nil
	}
	resp := &meeting.ActionResponse{
		ID:         a.ID.String(),
		ActionText: a.ActionText,
		Assignee:   a.AssigneeOrDefault(),
		Speaker:    a.Speaker,
		Completed:  a.Completed,
	}
	if a.DueDate != "" {
		due := a.DueDate
		resp.DueDate = &due
	}
	return resp
}

// ToActionResponses converts actions to their DTOs, never returning nil
func ToActionResponses(items []*entities.ActionItem) []*meeting.ActionResponse {
	out := make([]*meeting.ActionResponse, 0, len(items))
	for _, a := range items {
		if a != nil {
			out = append(out, ToActionResponse(a))
		}
	}
	return out
}

// FromActionInputs converts client actions to entities. Ids that are not
// uuids are replaced; defaults are applied by the meeting service.
func FromActionInputs(in []meeting.ActionInput) []*entities.ActionItem {
	out := make([]*entities.ActionItem, 0, len(in))
	for _, a := range in {
		id, err := uuid.Parse(a.ID)
		if err != nil {
			id = uuid.New()
		}
		out = append(out, &entities.ActionItem{
			ID:         id,
			ActionText: a.ActionText,
			Assignee:   a.Assignee,
			DueDate:    a.DueDate,
			Speaker:    a.Speaker,
			Completed:  a.Completed,
		})
	}
	return out
}
