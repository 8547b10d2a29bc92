package entities

import "strings"

// TemplateType selects the note-taking template of a meeting
type TemplateType string

const (
	TemplateProfessional TemplateType = "professional"
	TemplateAcademic     TemplateType = "academic"
	TemplateStudyGroup   TemplateType = "study-group"
)

// TemplateSection is one labelled field of a template
type TemplateSection struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// Template is the ordered list of sections for a template type
type Template struct {
	Type       TemplateType      `json:"type"`
	Name       string            `json:"name"`
	SummaryKey string            `json:"summary_key"`
	Sections   []TemplateSection `json:"sections"`
}

var templates = map[TemplateType]Template{
	TemplateProfessional: {
		Type:       TemplateProfessional,
		Name:       "Professional Meeting",
		SummaryKey: "executiveSummary",
		Sections: []TemplateSection{
			{ID: "meetingDetails", Label: "Meeting Details", Placeholder: "Date:\nTime:\nLocation/Platform:\nAttendees:\nNote-taker:"},
			{ID: "executiveSummary", Label: "Executive Summary", Placeholder: "(Complete after meeting)"},
			{ID: "meetingObjectives", Label: "Meeting Objectives", Placeholder: "Primary purpose:\nKey agenda items:"},
			{ID: "discussionNotes", Label: "Discussion Notes", Placeholder: "Topic 1:\nTopic 2:\nTopic 3:"},
			{ID: "decisionsMade", Label: "Decisions Made", Placeholder: "- \n- "},
			{ID: "actionItems", Label: "Action Items", Placeholder: "Task:\nOwner:\nDue Date:\nStatus:"},
			{ID: "parkingLot", Label: "Parking Lot", Placeholder: "Items to revisit later"},
			{ID: "nextMeeting", Label: "Next Meeting", Placeholder: "Date:\nFocus:"},
		},
	},
	TemplateAcademic: {
		Type:       TemplateAcademic,
		Name:       "Academic Lecture",
		SummaryKey: "lectureSummary",
		Sections: []TemplateSection{
			{ID: "courseInfo", Label: "Course Information", Placeholder: "Course, Date, Lecture #, Topic..."},
			{ID: "lectureSummary", Label: "Lecture Summary", Placeholder: "Overview of the lecture..."},
			{ID: "keyConcepts", Label: "Key Concepts", Placeholder: "Main concepts covered..."},
			{ID: "detailedNotes", Label: "Detailed Notes", Placeholder: "In-depth notes..."},
			{ID: "examplesStudies", Label: "Examples/Case Studies", Placeholder: "- "},
			{ID: "questions", Label: "Questions & Clarifications Needed", Placeholder: "Clarifications needed..."},
			{ID: "studyPriorities", Label: "Study Priorities", Placeholder: "What to review/practice"},
			{ID: "relatedMaterials", Label: "Related Materials", Placeholder: "Readings, assignments..."},
		},
	},
	TemplateStudyGroup: {
		Type:       TemplateStudyGroup,
		Name:       "Study Group",
		SummaryKey: "sessionSummary",
		Sections: []TemplateSection{
			{ID: "sessionDetails", Label: "Session Details", Placeholder: "Date:\nDuration:\nParticipants:\nLocation:"},
			{ID: "sessionSummary", Label: "Session Summary", Placeholder: "(Complete after session)"},
			{ID: "sessionGoals", Label: "Session Goals", Placeholder: "- \n- "},
			{ID: "topicsCovered", Label: "Topics Covered", Placeholder: "Topic 1:\nTopic 2:\nTopic 3:"},
			{ID: "keyInsights", Label: "Key Insights & Breakthroughs", Placeholder: "- "},
			{ID: "problemSolving", Label: "Problem-Solving Work", Placeholder: "Problem:\nApproach:\nSolution:"},
			{ID: "unresolvedQuestions", Label: "Unresolved Questions", Placeholder: "- "},
			{ID: "individualActions", Label: "Individual Action Items", Placeholder: "Person:\nTask:\nDeadline:"},
			{ID: "resources", Label: "Resources to Share", Placeholder: "- "},
			{ID: "nextSession", Label: "Next Session", Placeholder: "Date:\nFocus areas:\nPreparation needed:"},
		},
	},
}

// legacy template names from older saved meetings
var legacyTemplates = map[string]TemplateType{
	"daily-standup":  TemplateProfessional,
	"1-on-1":         TemplateProfessional,
	"client-meeting": TemplateProfessional,
	"team-meeting":   TemplateProfessional,
	"sales-call":     TemplateProfessional,
}

// NormalizeTemplateType maps legacy, unknown and empty names to a supported template
func NormalizeTemplateType(name string) TemplateType {
	name = strings.TrimSpace(strings.ToLower(name))
	if _, ok := templates[TemplateType(name)]; ok {
		return TemplateType(name)
	}
	if t, ok := legacyTemplates[name]; ok {
		return t
	}
	return TemplateProfessional
}

// TemplateFor returns the template for t after normalisation
func TemplateFor(t TemplateType) Template {
	return templates[NormalizeTemplateType(string(t))]
}

// Templates lists the supported templates in a stable order
func Templates() []Template {
	return []Template{
		templates[TemplateProfessional],
		templates[TemplateAcademic],
		templates[TemplateStudyGroup],
	}
}

// SectionIDs returns the ordered section ids
func (t Template) SectionIDs() []string {
	ids := make([]string, len(t.Sections))
	for i, s := range t.Sections {
		ids[i] = s.ID
	}
	return ids
}

// EmptySections returns a section map with every id set to ""
func (t Template) EmptySections() map[string]string {
	out := make(map[string]string, len(t.Sections))
	for _, s := range t.Sections {
		out[s.ID] = ""
	}
	return out
}
