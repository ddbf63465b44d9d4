package rotini

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/napalu/rotini/errs"
)

// DecodeDefinition decodes a YAML document (JSON documents are valid YAML) describing a root
// command into a Definition ready for New. Callbacks cannot be expressed in documents, so decoded
// arguments always use the default parser and validator.
func DecodeDefinition(data []byte) (Definition, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errs.ErrDecodeDefinition.Wrap(err)
	}

	def, ok := raw.(map[string]any)
	if !ok {
		return nil, errs.ErrDefinitionNotMap.WithArgs(fmt.Sprintf("%T", raw))
	}

	return def, nil
}
