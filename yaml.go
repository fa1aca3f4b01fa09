package escp

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML template definition and compiles it.
func ParseYAML(data []byte) (*Template, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return def.Compile()
}
