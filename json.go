package escp

import (
	"encoding/json"
	"fmt"
)

// ParseJSON decodes a JSON template definition and compiles it.
func ParseJSON(data []byte) (*Template, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return def.Compile()
}
