package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format specifies how command results are printed.
type Format string

const (
	// FormatJSON prints 2-space indented JSON (the default).
	FormatJSON Format = "json"

	// FormatYAML prints YAML converted from the JSON representation.
	FormatYAML Format = "yaml"

	// FormatText prints a human-readable rendering.
	FormatText Format = "text"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatText:
		return true
	default:
		return false
	}
}

// ParseFormat parses s case-insensitively. The second return value is false
// for unknown input, in which case FormatJSON is returned.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "text", "txt":
		return FormatText, true
	default:
		return FormatJSON, false
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"json", "yaml", "text"}
}

// TextRenderer produces the human-readable form of a result.
type TextRenderer interface {
	Text() string
}

// WriteResult writes v to w in the given format. FormatText requires v to
// implement TextRenderer and falls back to JSON otherwise.
func WriteResult(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatText:
		if r, ok := v.(TextRenderer); ok {
			_, err := io.WriteString(w, r.Text())
			return err
		}
	}
	return WriteJSON(w, v)
}

// WriteJSON writes v as 2-space indented JSON followed by a newline,
// without HTML escaping.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling json: %w", err)
	}
	return nil
}
