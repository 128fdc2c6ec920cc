package manifest

import "regexp"

var (
	// scopedSpecPattern matches "...@scope/name@version" at the end. A query
	// or fragment is not part of the version.
	scopedSpecPattern = regexp.MustCompile(`@([^@]+)@([^?#]+)(?:[?#].*)?$`)

	// segmentSpecPattern matches "name@version" in the last path segment,
	// e.g. "https://cdn.example/bar@2.3.1?bundle".
	segmentSpecPattern = regexp.MustCompile(`[^/@]+@([^/@?#]+)(?:[?#].*)?$`)
)

// SpecVersion extracts the version embedded in an external specifier, or
// LatestVersion when there is none.
func SpecVersion(spec string) string {
	if m := scopedSpecPattern.FindStringSubmatch(spec); m != nil {
		return m[2]
	}
	if m := segmentSpecPattern.FindStringSubmatch(spec); m != nil {
		return m[1]
	}
	return LatestVersion
}
