package escp

import (
	"io"
	"iter"
)

// FillSeq fills the template once per source produced by seq and writes the
// concatenated blocks to w. The sequence is drained before anything is
// written, preserving [Template.Fill]'s all-or-nothing output.
func (t *Template) FillSeq(w io.Writer, seq iter.Seq[Source]) error {
	var sources []Source
	seq(func(src Source) bool {
		sources = append(sources, src)
		return true
	})
	return t.Fill(w, sources...)
}

// FillChan fills the template once per source received from ch.
// It is a thin wrapper around [Template.FillSeq].
func (t *Template) FillChan(w io.Writer, ch <-chan Source) error {
	return t.FillSeq(w, chanToSeq(ch))
}

func chanToSeq(ch <-chan Source) iter.Seq[Source] {
	return func(yield func(Source) bool) {
		for src := range ch {
			if !yield(src) {
				return
			}
		}
	}
}
