package templates

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separatorRun  = regexp.MustCompile(`[\s_]+`)
	wordSplit     = regexp.MustCompile(`[-_\s]+`)
)

// Kebab converts a name to lowercase hyphenated form: camel-case boundaries
// and runs of whitespace or underscores become single hyphens.
func Kebab(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1-$2")
	s = separatorRun.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// Pascal capitalizes each hyphen, underscore or whitespace separated word
// and joins them.
func Pascal(s string) string {
	var sb strings.Builder
	for _, word := range wordSplit.Split(s, -1) {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(word[size:])
	}
	return sb.String()
}

// jsonString renders s as a JSON string literal without HTML escaping.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FuncMap returns the functions available to templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"json":   jsonString,
		"pascal": Pascal,
		"kebab":  Kebab,
	}
}
