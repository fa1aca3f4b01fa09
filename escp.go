package escp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidTemplate      = errors.New("invalid template")
	ErrMissingValue         = errors.New("missing value")
)

// LineSpacing selects one of the fixed vertical line spacings a printer
// supports.
type LineSpacing int

const (
	// SpacingOneSixthInch is 1/6 inch line spacing, the printer default.
	SpacingOneSixthInch LineSpacing = iota
	// SpacingOneEighthInch is 1/8 inch line spacing.
	SpacingOneEighthInch
)

var lineSpacings = map[string]LineSpacing{
	"1/6":                SpacingOneSixthInch,
	"ONE_PER_SIX_INCH":   SpacingOneSixthInch,
	"1/8":                SpacingOneEighthInch,
	"ONE_PER_EIGHT_INCH": SpacingOneEighthInch,
}

// ParseLineSpacing parses a line spacing token. Recognizes the short form
// ("1/6", "1/8") and the long form ("ONE_PER_SIX_INCH", "ONE_PER_EIGHT_INCH").
// Matching is exact and case-sensitive.
func ParseLineSpacing(s string) (LineSpacing, error) {
	if spacing, ok := lineSpacings[s]; ok {
		return spacing, nil
	}
	return 0, fmt.Errorf("%w: unknown line spacing %q", ErrInvalidConfiguration, s)
}

// String returns the short canonical form.
func (s LineSpacing) String() string {
	if s == SpacingOneEighthInch {
		return "1/8"
	}
	return "1/6"
}

// CharacterPitch selects one of the fixed horizontal pitches a printer
// supports, in characters per inch.
type CharacterPitch int

const (
	CPI5  CharacterPitch = 5
	CPI6  CharacterPitch = 6
	CPI10 CharacterPitch = 10
	CPI12 CharacterPitch = 12
	CPI17 CharacterPitch = 17
	CPI20 CharacterPitch = 20
)

const cpiSuffix = " cpi"

var characterPitches = map[string]CharacterPitch{
	"5":  CPI5,
	"6":  CPI6,
	"10": CPI10,
	"12": CPI12,
	"17": CPI17,
	"20": CPI20,
}

// ParseCharacterPitch parses a character pitch token. Recognizes the six
// supported pitches as bare numbers ("10") or with the unit suffix
// ("10 cpi"). Matching is exact and case-sensitive.
func ParseCharacterPitch(s string) (CharacterPitch, error) {
	token, _ := strings.CutSuffix(s, cpiSuffix)
	if pitch, ok := characterPitches[token]; ok {
		return pitch, nil
	}
	return 0, fmt.Errorf("%w: unknown character pitch %q", ErrInvalidConfiguration, s)
}

// String returns the canonical form with the unit suffix.
func (p CharacterPitch) String() string {
	return fmt.Sprintf("%d%s", int(p), cpiSuffix)
}
