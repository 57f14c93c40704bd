package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON serializes v to w as compact single-line JSON.
func WriteJSON(w io.Writer, v any) error {
	return encodeJSON(w, v, false)
}

// WritePrettyJSON serializes v to w as indented JSON.
func WritePrettyJSON(w io.Writer, v any) error {
	return encodeJSON(w, v, true)
}

func encodeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
