package renderer

import (
	"fmt"
	"regexp"
	"strings"
)

// markupPattern matches FUNCTION{operand} spans in messages, e.g. ITEM{map.txt}
var markupPattern = regexp.MustCompile(`([A-Z]+)\{([^{}]+)\}`)

// ExpandMarkup formats msg and replaces each markup span with style(function, operand).
// Unknown functions are left to style to decide.
func ExpandMarkup(style func(function, operand string) string, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return markupPattern.ReplaceAllStringFunc(ret, func(span string) string {
		m := markupPattern.FindStringSubmatch(span)
		return style(m[1], m[2])
	})
}

// FormatMarkup formats msg and leaves markup spans in place for the backend to style
// when it draws the text
func FormatMarkup(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Markup wraps text in the span for style. Normal and HUD text is returned unchanged.
func Markup(text string, style TextStyle) string {
	switch style {
	case StyleItem:
		return "ITEM{" + text + "}"
	case StyleDenied:
		return "DENIED{" + text + "}"
	case StyleSubtle:
		return "SUBTLE{" + text + "}"
	default:
		return text
	}
}

// StripMarkup formats msg and drops markup, keeping operands as plain text
func StripMarkup(msg string, args ...any) string {
	return ExpandMarkup(func(_, operand string) string { return operand }, msg, args...)
}

// MarkupStyle maps a markup function name to a text style
func MarkupStyle(function string) TextStyle {
	switch strings.ToUpper(function) {
	case "ITEM":
		return StyleItem
	case "DENIED":
		return StyleDenied
	case "SUBTLE":
		return StyleSubtle
	default:
		return StyleNormal
	}
}

// MarkupSegment is a run of text drawn in one style
type MarkupSegment struct {
	Text  string
	Style TextStyle
}

// ParseMarkup splits an already formatted message into styled runs
func ParseMarkup(msg string) []MarkupSegment {
	var segments []MarkupSegment

	lastIndex := 0
	for _, match := range markupPattern.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, MarkupSegment{Text: msg[lastIndex:match[0]], Style: StyleNormal})
		}
		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]
		segments = append(segments, MarkupSegment{Text: content, Style: MarkupStyle(function)})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, MarkupSegment{Text: msg[lastIndex:], Style: StyleNormal})
	}
	return segments
}
