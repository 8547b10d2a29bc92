package editor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// FormattedNotes renders the notes saved with a meeting: the user's own
// notes first, then every non-empty template section in template order.
func FormattedNotes(userNotes string, tmpl entities.Template, sections map[string]string) string {
	var sb strings.Builder
	if strings.TrimSpace(userNotes) != "" {
		sb.WriteString("USER NOTES:\n")
		sb.WriteString(userNotes)
		sb.WriteString("\n\n")
	}

	var extracted []string
	for _, s := range tmpl.Sections {
		v := sections[s.ID]
		if strings.TrimSpace(v) == "" {
			continue
		}
		extracted = append(extracted, s.Label+":\n"+v)
	}
	if len(extracted) > 0 {
		sb.WriteString("EXTRACTED DETAILS:\n\n")
		sb.WriteString(strings.Join(extracted, "\n\n"))
	}
	return sb.String()
}

// MergeSections overlays extracted onto prev without touching either
func MergeSections(prev, extracted map[string]string) map[string]string {
	out := make(map[string]string, len(prev)+len(extracted))
	for k, v := range prev {
		out[k] = v
	}
	for k, v := range extracted {
		out[k] = v
	}
	return out
}

// Email is a plain text draft of the meeting notes
type Email struct {
	Subject string
	Body    string
}

// EmailDraft assembles notes, transcript, extracted sections and action
// items into an email
func EmailDraft(s State, userNotes string, sections map[string]string) Email {
	title := ""
	transcript := ""
	tmpl := entities.TemplateFor(entities.TemplateProfessional)
	if s.Meeting != nil {
		title = s.Meeting.Title
		transcript = s.Meeting.Transcript
		tmpl = entities.TemplateFor(s.Meeting.TemplateType)
	}

	subjectTitle := title
	if subjectTitle == "" {
		subjectTitle = "Meeting"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Meeting: %s\n\n", title)
	if strings.TrimSpace(userNotes) != "" {
		fmt.Fprintf(&body, "YOUR NOTES:\n%s\n\n", userNotes)
	}
	if transcript != "" {
		fmt.Fprintf(&body, "TRANSCRIPT:\n%s\n\n", transcript)
	}

	header := false
	for _, sec := range tmpl.Sections {
		v := sections[sec.ID]
		if strings.TrimSpace(v) == "" {
			continue
		}
		if !header {
			body.WriteString("EXTRACTED MEETING DETAILS:\n\n")
			header = true
		}
		fmt.Fprintf(&body, "%s:\n%s\n\n", sec.Label, v)
	}

	if len(s.Actions) > 0 {
		body.WriteString("ACTION ITEMS:\n")
		for _, a := range s.Actions {
			fmt.Fprintf(&body, "- %s (Assignee: %s, Due: %s)\n", a.ActionText, a.Assignee, a.DueDateOrDefault())
		}
	}

	return Email{Subject: "Meeting Notes: " + subjectTitle, Body: body.String()}
}

// MailtoURL encodes the draft as a mailto: link
func (e Email) MailtoURL() string {
	return "mailto:?subject=" + escape(e.Subject) + "&body=" + escape(e.Body)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
