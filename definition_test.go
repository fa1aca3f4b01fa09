package escp_test

import (
	"testing"

	"github.com/bjaus/escp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idTemplateJSON = `{
	"placeholder": ["id", "nickname"],
	"template": ["Your id is ${id}, Mr. ${nickname}."]
}`

func TestParseJSONFillMap(t *testing.T) {
	t.Parallel()
	tmpl, err := escp.ParseJSON([]byte(idTemplateJSON))
	require.NoError(t, err)
	got, err := tmpl.FillString(escp.Map{"id": "007", "nickname": "Solid Snake"})
	require.NoError(t, err)
	assert.Equal(t, initSeq+"Your id is 007, Mr. Solid Snake."+crlf+crff+initSeq, got)
}

func TestParseJSONPageFormat(t *testing.T) {
	t.Parallel()
	data := `{
		"placeholder": ["id"],
		"template": ["id: ${id}"],
		"pageFormat": {"lineSpacing": "1/8", "characterPitch": "17 cpi", "pageLength": 30, "pageWidth": 80}
	}`
	tmpl, err := escp.ParseJSON([]byte(data))
	require.NoError(t, err)
	require.NotNil(t, tmpl.Format())
	assert.Equal(t, escp.SpacingOneEighthInch, tmpl.Format().LineSpacing())
	assert.Equal(t, escp.CPI17, tmpl.Format().CharacterPitch())

	got, err := tmpl.FillString(escp.Map{"id": "007"})
	require.NoError(t, err)
	assert.Equal(t, initSeq+"\x1b0"+"\x1b!\x04"+"id: 007"+crlf+crff+initSeq, got)
}

func TestParseJSONSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := escp.ParseJSON([]byte(`{"placeholder": [`))
	assert.ErrorIs(t, err, escp.ErrInvalidTemplate)
}

func TestParseJSONUndeclaredPlaceholder(t *testing.T) {
	t.Parallel()
	data := `{"placeholder": ["id"], "template": ["${id} ${nickname}"]}`
	_, err := escp.ParseJSON([]byte(data))
	assert.ErrorIs(t, err, escp.ErrInvalidTemplate)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()
	data := `
placeholder:
  - id
  - nickname
template:
  - "Your id is ${id}, Mr. ${nickname}."
pageFormat:
  characterPitch: "12"
`
	tmpl, err := escp.ParseYAML([]byte(data))
	require.NoError(t, err)
	got, err := tmpl.FillString(escp.Map{"id": "007", "nickname": "Solid Snake"})
	require.NoError(t, err)
	assert.Equal(t, initSeq+"\x1b!\x01"+"Your id is 007, Mr. Solid Snake."+crlf+crff+initSeq, got)
}

func TestParseYAMLSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := escp.ParseYAML([]byte("placeholder: [unclosed"))
	assert.ErrorIs(t, err, escp.ErrInvalidTemplate)
}

func TestCompileInvalidSpacing(t *testing.T) {
	t.Parallel()
	def := escp.Definition{
		Placeholder: []string{"id"},
		Template:    []string{"${id}"},
		PageFormat:  &escp.FormatDefinition{LineSpacing: "1/4"},
	}
	_, err := def.Compile()
	require.Error(t, err)
	assert.ErrorIs(t, err, escp.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), `"1/4"`)
}

func TestCompileInvalidPitch(t *testing.T) {
	t.Parallel()
	def := escp.Definition{
		Placeholder: []string{"id"},
		Template:    []string{"${id}"},
		PageFormat:  &escp.FormatDefinition{CharacterPitch: "11 cpi"},
	}
	_, err := def.Compile()
	assert.ErrorIs(t, err, escp.ErrInvalidConfiguration)
}

func TestCompileNoPageFormat(t *testing.T) {
	t.Parallel()
	def := escp.Definition{Placeholder: []string{"id"}, Template: []string{"${id}"}}
	tmpl, err := def.Compile()
	require.NoError(t, err)
	assert.Nil(t, tmpl.Format())
}

func TestCompileEmptyFormatSection(t *testing.T) {
	t.Parallel()
	// A present but empty pageFormat section sets nothing: the preamble is
	// the bare initialize sequence.
	def := escp.Definition{
		Placeholder: []string{"id"},
		Template:    []string{"${id}"},
		PageFormat:  &escp.FormatDefinition{PageLength: 66},
	}
	tmpl, err := def.Compile()
	require.NoError(t, err)
	require.NotNil(t, tmpl.Format())
	assert.Equal(t, initSeq, tmpl.Format().Build())
}
