// Package output serializes and filters extraction results.
package output

import (
	"bytes"
	"encoding/json"
)

// ToJSON serializes v. Non-ASCII text such as Korean names is written
// as-is rather than escaped.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
