package escp

import "strings"

// PageFormat holds the optional line spacing and character pitch of a
// template. An option left unset is reported as its documented default by
// the getters but is omitted from [PageFormat.Build], so the printer keeps
// whatever setting it already has.
//
// Configure a PageFormat once, before attaching it to a template; after
// that it must be treated as read-only.
type PageFormat struct {
	spacing *LineSpacing
	pitch   *CharacterPitch
}

// SetLineSpacing sets the vertical line spacing from a token accepted by
// [ParseLineSpacing].
func (f *PageFormat) SetLineSpacing(value string) error {
	spacing, err := ParseLineSpacing(value)
	if err != nil {
		return err
	}
	f.spacing = &spacing
	return nil
}

// LineSpacing returns the configured line spacing, or
// [SpacingOneSixthInch] when unset.
func (f *PageFormat) LineSpacing() LineSpacing {
	if f.spacing == nil {
		return SpacingOneSixthInch
	}
	return *f.spacing
}

// SetCharacterPitch sets the character pitch from a token accepted by
// [ParseCharacterPitch].
func (f *PageFormat) SetCharacterPitch(value string) error {
	pitch, err := ParseCharacterPitch(value)
	if err != nil {
		return err
	}
	f.pitch = &pitch
	return nil
}

// CharacterPitch returns the configured character pitch, or [CPI10] when
// unset.
func (f *PageFormat) CharacterPitch() CharacterPitch {
	if f.pitch == nil {
		return CPI10
	}
	return *f.pitch
}

// Build returns the initialization preamble for this page format: the
// initialize sequence, then the line spacing command if one was set, then
// the character pitch command if one was set. Unset options emit nothing.
func (f *PageFormat) Build() string {
	var b strings.Builder
	b.WriteString(Initialize())
	if f.spacing != nil {
		b.WriteString(f.spacing.Command())
	}
	if f.pitch != nil {
		b.WriteString(f.pitch.Command())
	}
	return b.String()
}
