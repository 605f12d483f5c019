package compare

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format encodes compSet without HTML escaping so descriptions like "P&I" stay readable
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if jf.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(compSet); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
