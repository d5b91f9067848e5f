package commitment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Canonical - renders v the way JSON.stringify does for the game records:
// declared field order, no HTML escaping and no trailing newline.
func Canonical(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode canonical json: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
