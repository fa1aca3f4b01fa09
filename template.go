package escp

import (
	"fmt"
	"regexp"
)

// Placeholder references are written as ${name}. An unterminated ${ is kept
// as literal text.
var placeholderPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// segment is a run of literal text, or a placeholder reference when ref is
// set (text then holds the placeholder name).
type segment struct {
	text string
	ref  bool
}

type templateLine struct {
	segments []segment
}

// Template is the parsed form of a report template: a declared list of
// placeholder names, one or more lines mixing literal text with ${name}
// references, and an optional page format. A Template is immutable after
// construction and safe to share across concurrent fills.
type Template struct {
	placeholders []string
	source       []string
	lines        []templateLine
	format       *PageFormat
}

// NewTemplate parses lines against the declared placeholder names. Every
// ${name} reference must exactly match a declared name (case-sensitive, no
// trimming); a reference to an undeclared name fails with
// [ErrInvalidTemplate] naming the line and token.
func NewTemplate(placeholders, lines []string) (*Template, error) {
	return NewTemplateWithFormat(placeholders, lines, nil)
}

// NewTemplateWithFormat is [NewTemplate] with a page format attached. The
// format's [PageFormat.Build] output replaces the bare initialize sequence
// at the start of every filled block. A nil format is allowed.
func NewTemplateWithFormat(placeholders, lines []string, format *PageFormat) (*Template, error) {
	declared := make(map[string]struct{}, len(placeholders))
	for _, name := range placeholders {
		declared[name] = struct{}{}
	}
	t := &Template{
		placeholders: make([]string, len(placeholders)),
		source:       make([]string, len(lines)),
		lines:        make([]templateLine, 0, len(lines)),
		format:       format,
	}
	copy(t.placeholders, placeholders)
	copy(t.source, lines)
	for i, text := range lines {
		line, err := parseLine(text, i+1, declared)
		if err != nil {
			return nil, err
		}
		t.lines = append(t.lines, line)
	}
	return t, nil
}

// parseLine splits one line into literal and placeholder segments. num is
// the 1-based line number used in error messages.
func parseLine(text string, num int, declared map[string]struct{}) (templateLine, error) {
	var segs []segment
	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			segs = append(segs, segment{text: text[last:m[0]]})
		}
		token := text[m[2]:m[3]]
		if _, ok := declared[token]; !ok {
			return templateLine{}, fmt.Errorf("%w: line %d references undeclared placeholder %q", ErrInvalidTemplate, num, token)
		}
		segs = append(segs, segment{text: token, ref: true})
		last = m[1]
	}
	if last < len(text) {
		segs = append(segs, segment{text: text[last:]})
	}
	return templateLine{segments: segs}, nil
}

// Placeholders returns the declared placeholder names in declaration order.
func (t *Template) Placeholders() []string {
	out := make([]string, len(t.placeholders))
	copy(out, t.placeholders)
	return out
}

// Lines returns the raw template lines in declaration order.
func (t *Template) Lines() []string {
	out := make([]string, len(t.source))
	copy(out, t.source)
	return out
}

// Format returns the attached page format, or nil. Callers must not modify
// the returned value.
func (t *Template) Format() *PageFormat { return t.format }
