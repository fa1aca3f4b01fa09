package escp

// Control sequences shared by the fill engine. CRFF pairs a carriage return
// with a form feed so the head returns to column one before the page ejects.
const (
	crlf = "\r\n"
	crff = "\r\f"
)

// Initialize returns the ESC @ sequence that resets the printer to its
// power-on state.
func Initialize() string { return "\x1b@" }

// CRLF returns the carriage-return/line-feed pair that terminates a line.
func CRLF() string { return crlf }

// FormFeed returns the carriage-return/form-feed pair that ejects the
// current page.
func FormFeed() string { return crff }

var spacingCommands = map[LineSpacing]string{
	SpacingOneEighthInch: "\x1b0", // ESC 0
	SpacingOneSixthInch:  "\x1b2", // ESC 2
}

// Command returns the ESC/P sequence that selects this line spacing.
func (s LineSpacing) Command() string { return spacingCommands[s] }

// Every pitch maps to the master select command ESC ! n. 12 cpi sets bit 0,
// condensed mode bit 2, and double-width bit 5; 5 and 6 cpi are the
// double-width variants of 10 and 12 cpi, 17 and 20 cpi the condensed ones.
var pitchCommands = map[CharacterPitch]string{
	CPI5:  "\x1b!\x20",
	CPI6:  "\x1b!\x21",
	CPI10: "\x1b!\x00",
	CPI12: "\x1b!\x01",
	CPI17: "\x1b!\x04",
	CPI20: "\x1b!\x05",
}

// Command returns the ESC/P master select sequence for this pitch.
func (p CharacterPitch) Command() string { return pitchCommands[p] }
