package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffResult describes how a regenerated index differs from the current one.
type DiffResult struct {
	// Added references exist only in the new index.
	Added []string `json:"added"`

	// Removed references exist only in the current index.
	Removed []string `json:"removed"`

	// Modified references exist in both with different fields.
	Modified []ModifiedRef `json:"modified"`
}

// ModifiedRef is a reference whose fields changed.
type ModifiedRef struct {
	// Key identifies the reference (see RefKey).
	Key string `json:"key"`

	// Diff is the rendered field-level change report.
	Diff string `json:"diff"`
}

// IsEmpty reports whether there are no changes.
func (r *DiffResult) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// RefKey identifies a reference by name, version and provenance, e.g.
// "admin@1.0.0" for a published version or "admin@dev (dev)" for an override.
func RefKey(r ModuleReference) string {
	key := r.Name + "@" + r.Version
	if p := r.Provenance(); p != PreferURL {
		key += " (" + p + ")"
	}
	return key
}

// Diff compares two reference lists. Added and modified keys follow the
// order of next, removed keys the order of previous.
func Diff(previous, next []ModuleReference) (*DiffResult, error) {
	result := &DiffResult{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]ModifiedRef, 0),
	}

	prevByKey := make(map[string]ModuleReference, len(previous))
	for _, r := range previous {
		prevByKey[RefKey(r)] = r
	}
	nextKeys := make(map[string]bool, len(next))

	for _, r := range next {
		key := RefKey(r)
		if nextKeys[key] {
			continue
		}
		nextKeys[key] = true

		old, ok := prevByKey[key]
		if !ok {
			result.Added = append(result.Added, key)
			continue
		}
		if reflect.DeepEqual(normalizeRef(old), normalizeRef(r)) {
			continue
		}

		report, err := compareRefs(old, r)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", key, err)
		}
		result.Modified = append(result.Modified, ModifiedRef{Key: key, Diff: report})
	}

	seen := make(map[string]bool, len(previous))
	for _, r := range previous {
		key := RefKey(r)
		if nextKeys[key] || seen[key] {
			continue
		}
		seen[key] = true
		result.Removed = append(result.Removed, key)
	}

	return result, nil
}

// normalizeRef treats a nil and an empty styles list alike.
func normalizeRef(r ModuleReference) ModuleReference {
	if len(r.Styles) == 0 {
		r.Styles = nil
	}
	return r
}

// compareRefs renders the field changes between two references with dyff.
// JSON is valid YAML, so the marshaled references load directly.
func compareRefs(from, to ModuleReference) (string, error) {
	fromInput, err := refInput("current", from)
	if err != nil {
		return "", err
	}
	toInput, err := refInput("generated", to)
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing references: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      true,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func refInput(location string, r ModuleReference) (ytbx.InputFile, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("marshaling reference: %w", err)
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("loading reference: %w", err)
	}

	return ytbx.InputFile{Location: location, Documents: docs}, nil
}
