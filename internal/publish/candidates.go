package publish

import (
	"os"
	"path/filepath"
	"strings"
)

// candidateSet is an insertion-ordered set of package names.
type candidateSet struct {
	names []string
	seen  map[string]struct{}
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]struct{})}
}

func (c *candidateSet) add(name string) {
	if name == "" {
		return
	}
	if _, ok := c.seen[name]; ok {
		return
	}
	c.seen[name] = struct{}{}
	c.names = append(c.names, name)
}

// addInstalled adds every package installed under packagesDir. Hidden
// entries are skipped and "@scope" directories contribute "@scope/member"
// names instead of themselves. Unreadable directories contribute nothing.
func (c *candidateSet) addInstalled(packagesDir string) {
	entries, err := os.ReadDir(packagesDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(name, "@") {
			c.add(name)
			continue
		}

		members, err := os.ReadDir(filepath.Join(packagesDir, name))
		if err != nil {
			continue
		}
		for _, member := range members {
			c.add(name + "/" + member.Name())
		}
	}
}
