package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
)

// WordRenderer writes Office Open XML documents
type WordRenderer struct{}

func (WordRenderer) Format() string { return "word" }
func (WordRenderer) Ext() string    { return "docx" }
func (WordRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (WordRenderer) Render(blocks []Block) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create docx: %w", err)
	}

	for _, b := range blocks {
		switch b.Kind {
		case BlockTitle:
			if _, err := doc.AddHeading(b.Text, 0); err != nil {
				return nil, fmt.Errorf("add title: %w", err)
			}
		case BlockMeta:
			doc.AddParagraph("").AddText(b.Text).Italic(true)
		case BlockHeading:
			if _, err := doc.AddHeading(b.Text, 1); err != nil {
				return nil, fmt.Errorf("add heading: %w", err)
			}
		case BlockParagraph:
			for _, line := range strings.Split(b.Text, "\n") {
				doc.AddParagraph(line)
			}
		case BlockActionText:
			doc.AddParagraph("").AddText(b.Text).Bold(true)
		case BlockActionMeta:
			doc.AddParagraph(b.Text)
		}
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}
