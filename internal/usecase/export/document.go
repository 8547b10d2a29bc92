package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// GeneratedLayout matches the locale string the web client shows
const GeneratedLayout = "1/2/2006, 3:04:05 PM"

// BlockKind classifies a rendered line
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockMeta
	BlockHeading
	BlockParagraph
	BlockActionText
	BlockActionMeta
)

// Block is one renderer-neutral element of an export
type Block struct {
	Kind BlockKind
	Text string
}

// Request is the export relay input
type Request struct {
	Title      string                 `json:"title"`
	Transcript string                 `json:"transcript"`
	Notes      string                 `json:"notes"`
	Actions    []*entities.ActionItem `json:"actions"`
}

// BuildDocument lays out the export: title, generation time, then the
// transcript, notes and numbered action items when present.
func BuildDocument(req Request, now time.Time) []Block {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = entities.DefaultMeetingTitle
	}

	blocks := []Block{
		{Kind: BlockTitle, Text: title},
		{Kind: BlockMeta, Text: "Generated: " + now.Format(GeneratedLayout)},
	}

	if strings.TrimSpace(req.Transcript) != "" {
		blocks = append(blocks,
			Block{Kind: BlockHeading, Text: "Transcript"},
			Block{Kind: BlockParagraph, Text: req.Transcript},
		)
	}
	if strings.TrimSpace(req.Notes) != "" {
		blocks = append(blocks,
			Block{Kind: BlockHeading, Text: "Notes"},
			Block{Kind: BlockParagraph, Text: req.Notes},
		)
	}

	actions := make([]*entities.ActionItem, 0, len(req.Actions))
	for _, a := range req.Actions {
		if a != nil {
			actions = append(actions, a)
		}
	}
	if len(actions) > 0 {
		blocks = append(blocks, Block{Kind: BlockHeading, Text: "Action Items"})
		for i, a := range actions {
			blocks = append(blocks,
				Block{Kind: BlockActionText, Text: fmt.Sprintf("%d. %s", i+1, a.ActionText)},
				Block{Kind: BlockActionMeta, Text: fmt.Sprintf("Assignee: %s | Due: %s", a.AssigneeOrDefault(), a.DueDateOrDefault())},
			)
		}
	}
	return blocks
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)
)

const maxTitleRunes = 100

// Filename derives <title>_<unix millis>.<ext>. Whitespace runs become "_"
// and path separators or other unsafe characters are replaced.
func Filename(title string, now time.Time, ext string) string {
	base := strings.TrimSpace(title)
	base = whitespaceRun.ReplaceAllString(base, "_")
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, ".")
	if r := []rune(base); len(r) > maxTitleRunes {
		base = string(r[:maxTitleRunes])
	}
	if base == "" {
		base = "Meeting"
	}
	return fmt.Sprintf("%s_%d.%s", base, now.UnixMilli(), ext)
}
