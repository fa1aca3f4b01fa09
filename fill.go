package escp

import (
	"bytes"
	"fmt"
	"io"
)

// Fill resolves the template once per source, in order, and writes the
// result to w. Each source yields one self-contained block: the page-format
// preamble (or a bare initialize sequence when the template has no page
// format), every template line with its placeholders substituted and
// terminated by CRLF, then a form feed and a trailing initialize sequence.
// Blocks share no printer state, so any block can be re-sent on its own.
//
// Output is all-or-nothing: nothing is written to w unless every source
// resolves completely.
func (t *Template) Fill(w io.Writer, sources ...Source) error {
	var buf bytes.Buffer
	for _, src := range sources {
		if err := t.fill(&buf, src); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// FillString is [Template.Fill] returning the result as a string.
func (t *Template) FillString(sources ...Source) (string, error) {
	var buf bytes.Buffer
	if err := t.Fill(&buf, sources...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (t *Template) fill(buf *bytes.Buffer, src Source) error {
	if t.format != nil {
		buf.WriteString(t.format.Build())
	} else {
		buf.WriteString(Initialize())
	}
	for _, line := range t.lines {
		for _, seg := range line.segments {
			if !seg.ref {
				buf.WriteString(seg.text)
				continue
			}
			value, ok := src.Lookup(seg.text)
			if !ok {
				return fmt.Errorf("%w: no value for placeholder %q", ErrMissingValue, seg.text)
			}
			buf.WriteString(value)
		}
		buf.WriteString(crlf)
	}
	buf.WriteString(crff)
	buf.WriteString(Initialize())
	return nil
}
