package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ErrNoJSON is returned when a completion contains no usable JSON value
var ErrNoJSON = errors.New("no JSON value found in completion")

// JSONKind selects the top-level JSON value ExtractJSON looks for
type JSONKind int

const (
	KindArray JSONKind = iota
	KindObject
)

func (k JSONKind) open() byte {
	if k == KindObject {
		return '{'
	}
	return '['
}

func (k JSONKind) close() byte {
	if k == KindObject {
		return '}'
	}
	return ']'
}

// maxCandidates bounds the balanced scans tried on one reply
const maxCandidates = 64

// ExtractJSON pulls the first valid JSON value of the given kind out of a
// model reply. Code fences are stripped first. Balanced bracket candidates
// are tried left to right (brackets inside strings are ignored), then the
// span from the first opening to the last closing bracket, then the whole
// reply.
func ExtractJSON(reply string, kind JSONKind) (json.RawMessage, error) {
	stripped := stripCodeFences(reply)
	if raw, ok := scanJSON(stripped, kind); ok {
		return raw, nil
	}
	// the fenced block may not have been the JSON one
	if whole := strings.TrimSpace(reply); whole != stripped {
		if raw, ok := scanJSON(whole, kind); ok {
			return raw, nil
		}
	}
	return nil, ErrNoJSON
}

func scanJSON(content string, kind JSONKind) (json.RawMessage, bool) {
	tried := 0
	for i := 0; i < len(content) && tried < maxCandidates; i++ {
		if content[i] != kind.open() {
			continue
		}
		tried++
		end, ok := matchBracket(content, i)
		if !ok {
			continue
		}
		if candidate := content[i : end+1]; isKind(candidate, kind) {
			return json.RawMessage(candidate), true
		}
	}

	first, last := strings.IndexByte(content, kind.open()), strings.LastIndexByte(content, kind.close())
	if first >= 0 && last > first {
		if candidate := content[first : last+1]; isKind(candidate, kind) {
			return json.RawMessage(candidate), true
		}
	}

	if isKind(content, kind) {
		return json.RawMessage(strings.TrimSpace(content)), true
	}
	return nil, false
}

// matchBracket returns the index of the bracket closing s[start], skipping
// over JSON string literals. Mismatched nesting ends the scan.
func matchBracket(s string, start int) (int, bool) {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			stack = append(stack, ']')
		case '{':
			stack = append(stack, '}')
		case ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return 0, false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isKind(s string, kind JSONKind) bool {
	s = strings.TrimSpace(s)
	if s == "" || s[0] != kind.open() {
		return false
	}
	return json.Valid([]byte(s))
}

// stripCodeFences extracts JSON content from markdown code blocks or plain text
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "```")
	if start == -1 {
		return content
	}

	inner := content[start+3:]
	// drop the info string, e.g. ```json
	if nl := strings.IndexByte(inner, '\n'); nl != -1 {
		if info := strings.TrimSpace(inner[:nl]); !strings.ContainsAny(info, "[{") {
			inner = inner[nl+1:]
		}
	} else {
		inner = strings.TrimPrefix(inner, "json")
	}

	if end := strings.Index(inner, "```"); end != -1 {
		inner = inner[:end]
	}

	return strings.TrimSpace(inner)
}

// ParseActions turns a model reply into action items. A reply with no
// parseable array yields an empty list. Every item gets a fresh id and
// starts incomplete; due dates that are not YYYY-MM-DD are dropped.
func ParseActions(reply string) []*entities.ActionItem {
	items := make([]*entities.ActionItem, 0)

	raw, err := ExtractJSON(reply, KindArray)
	if err != nil {
		return items
	}

	var decoded []interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return items
	}

	for _, v := range decoded {
		obj, ok := v.(map[string]interface{})
		if !ok {
			continue
		}

		text := stringField(obj, "action_text")
		if text == "" {
			text = "No description"
		}

		item := entities.NewActionItem(text)
		if assignee := stringField(obj, "assignee"); assignee != "" {
			item.Assignee = assignee
		}
		if due := stringField(obj, "due_date"); entities.ValidDueDate(due) {
			item.DueDate = due
		}
		item.Speaker = stringField(obj, "speaker")
		item.Completed = false

		items = append(items, item)
	}
	return items
}

// ParseSections turns a model reply into a template section map. Missing
// keys are tolerated and unknown keys are kept.
func ParseSections(reply string) (map[string]string, error) {
	raw, err := ExtractJSON(reply, KindObject)
	if err != nil {
		return nil, err
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	out := make(map[string]string, len(decoded))
	for k, v := range decoded {
		out[k] = stringify(v)
	}
	return out, nil
}

func stringField(obj map[string]interface{}, key string) string {
	return strings.TrimSpace(stringify(obj[key]))
}

// stringify renders loosely typed JSON values as text
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []interface{}:
		lines := make([]string, 0, len(t))
		for _, e := range t {
			if s := stringify(e); s != "" {
				lines = append(lines, s)
			}
		}
		return strings.Join(lines, "\n")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
