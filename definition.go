package escp

// Definition is the serialized shape of a template: the declared placeholder
// names, the template lines, and an optional page format section. It is the
// structure a JSON or YAML template file decodes into before compiling.
type Definition struct {
	Placeholder []string          `json:"placeholder" yaml:"placeholder"`
	Template    []string          `json:"template" yaml:"template"`
	PageFormat  *FormatDefinition `json:"pageFormat,omitempty" yaml:"pageFormat,omitempty"`
}

// FormatDefinition is the pageFormat section of a [Definition]. PageLength
// and PageWidth are carried for preview renderers; the fill engine ignores
// them.
type FormatDefinition struct {
	LineSpacing    string `json:"lineSpacing,omitempty" yaml:"lineSpacing,omitempty"`
	CharacterPitch string `json:"characterPitch,omitempty" yaml:"characterPitch,omitempty"`
	PageLength     int    `json:"pageLength,omitempty" yaml:"pageLength,omitempty"`
	PageWidth      int    `json:"pageWidth,omitempty" yaml:"pageWidth,omitempty"`
}

// Compile builds the immutable [Template] described by the definition.
// Unrecognized line-spacing or character-pitch tokens fail here with
// [ErrInvalidConfiguration], before the template is ever filled.
func (d Definition) Compile() (*Template, error) {
	var format *PageFormat
	if d.PageFormat != nil {
		format = &PageFormat{}
		if d.PageFormat.LineSpacing != "" {
			if err := format.SetLineSpacing(d.PageFormat.LineSpacing); err != nil {
				return nil, err
			}
		}
		if d.PageFormat.CharacterPitch != "" {
			if err := format.SetCharacterPitch(d.PageFormat.CharacterPitch); err != nil {
				return nil, err
			}
		}
	}
	return NewTemplateWithFormat(d.Placeholder, d.Template, format)
}
