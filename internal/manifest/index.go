package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stratton-cologne/srm/internal/fsutil"
)

// ReadIndex loads an existing index file. A missing file yields an empty list.
func ReadIndex(file string) ([]ModuleReference, error) {
	exists, err := fsutil.Exists(file)
	if err != nil {
		return nil, fmt.Errorf("checking index %s: %w", file, err)
	}
	if !exists {
		return []ModuleReference{}, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", file, err)
	}

	var refs []ModuleReference
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", file, err)
	}
	return refs, nil
}
