package renderer

import (
	"regexp"
	"strings"

	"github.com/arturogbruno/lights-out-game/pkg/game/locale"
)

// markupRegex matches FUNCTION{content}.
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Segment is a run of text drawn in one style.
type Segment struct {
	Text  string
	Style TextStyle
}

// ParseMarkup splits a message into styled segments. ACTION{...} marks a key
// or command, SUBTLE{...} and DENIED{...} dim or warn, and GT{KEY} is replaced
// by its catalogue entry. Unknown functions are kept verbatim.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, Segment{Text: msg[lastIndex:match[0]]})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		switch function {
		case "ACTION":
			segments = append(segments, Segment{Text: content, Style: StyleAction})
		case "SUBTLE":
			segments = append(segments, Segment{Text: content, Style: StyleSubtle})
		case "DENIED":
			segments = append(segments, Segment{Text: content, Style: StyleDenied})
		case "GT":
			segments = append(segments, Segment{Text: locale.T(content)})
		default:
			segments = append(segments, Segment{Text: msg[match[0]:match[1]]})
		}
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, Segment{Text: msg[lastIndex:]})
	}
	return segments
}

// PlainText returns msg with all markup removed.
func PlainText(msg string) string {
	var b strings.Builder
	for _, s := range ParseMarkup(msg) {
		b.WriteString(s.Text)
	}
	return b.String()
}
