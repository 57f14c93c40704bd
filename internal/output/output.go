// Package output renders diagnostic results as YAML or JSON.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the diag command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Out is where Print writes. Tests replace it with a buffer.
var Out io.Writer = os.Stdout

// ParseFormat maps a --format value to a Format. The empty string selects YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// Print serializes v to Out in the current output format.
func Print(v any) error {
	return Fprint(Out, v)
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v any) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return WritePrettyJSON(w, v)
		}
		return WriteJSON(w, v)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// Sprint is Fprint into a string.
func Sprint(v any) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}
