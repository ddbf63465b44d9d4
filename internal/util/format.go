package util

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormatValue renders a runtime value for an error message. Arrays are JSON encoded, without HTML
// escaping, so their elements stay readable; everything else uses its default format.
func FormatValue(v any) string {
	if IsArray(v) {
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(v); err == nil {
			return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
		}
	}

	return fmt.Sprint(v)
}
