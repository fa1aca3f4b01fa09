// Package escp fills report templates and renders the result as an ESC/P
// control-code stream for dot-matrix printers.
//
// A [Template] is built from a declared list of placeholder names and one or
// more lines of text containing ${name} references. [Template.Fill] resolves
// every reference against a [Source] and emits the final stream: literal
// text interleaved with the printer initialization and formatting sequences,
// ready to hand verbatim to a printer transport.
//
//	t, err := escp.NewTemplate(
//		[]string{"id", "nickname"},
//		[]string{"Your id is ${id}, Mr. ${nickname}."},
//	)
//	out, err := t.FillString(escp.Map{"id": "007", "nickname": "Solid Snake"})
//
// # Sources
//
// Any type with a Lookup method is a [Source]. Two adapters are provided:
// [Map] over a flat key/value mapping, and [Accessors] binding placeholder
// names to accessor functions on an application object. Passing several
// sources to [Template.Fill] produces one complete output block per source,
// in order; every block is bounded by its own initialize and form-feed
// sequences, so each is independently reprintable. [Template.FillSeq] and
// [Template.FillChan] accept sources from an iterator or channel instead.
//
// # Page format
//
// A [PageFormat] carries the optional line spacing and character pitch of a
// template. [PageFormat.Build] emits a command only for options explicitly
// set; an unset option leaves the printer's current hardware setting alone,
// while the getters still report the documented defaults (1/6 inch spacing,
// 10 cpi) for callers that need an effective value.
//
// # Template definitions
//
// [ParseJSON] and [ParseYAML] decode a serialized [Definition] and compile
// it into a Template:
//
//	{
//	  "placeholder": ["id", "nickname"],
//	  "template": ["Your id is ${id}, Mr. ${nickname}."],
//	  "pageFormat": {"lineSpacing": "1/8", "characterPitch": "17 cpi"}
//	}
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfiguration] — unrecognized line-spacing or
//     character-pitch token, reported when the value is set
//   - [ErrInvalidTemplate] — a ${name} reference to an undeclared
//     placeholder, or an undecodable definition, reported when the template
//     is built
//   - [ErrMissingValue] — a referenced placeholder with no value in the
//     current source, reported by the failing fill call
//
// A fill either succeeds completely or writes nothing; there is no partial
// output. Templates and page formats are immutable after construction and
// safe for concurrent fills, provided each call uses its own Source.
package escp
