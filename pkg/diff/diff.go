package diff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wI2L/jsondiff"
)

const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
)

type PatchOp struct {
	Op       string      `json:"op"`
	Actor    string      `json:"actor,omitempty"`
	Path     string      `json:"path"`
	NewValue interface{} `json:"new_value,omitempty"`
	OldValue interface{} `json:"old_value,omitempty"`
}

// GetChangelog compares the JSON forms of a and b and returns one operation per changed path, with
// the previous value attached to removals and replacements. Paths listed in ignore are skipped.
func GetChangelog(actor string, a, b interface{}, ignore ...string) ([]*PatchOp, error) {
	jsonA, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshaling original: %w", err)
	}

	jsonB, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshaling modified: %w", err)
	}

	var opts []jsondiff.Option
	if len(ignore) > 0 {
		opts = append(opts, jsondiff.Ignores(ignore...))
	}
	patch, err := jsondiff.CompareJSON(jsonA, jsonB, opts...)
	if err != nil {
		return nil, fmt.Errorf("comparing: %w", err)
	}

	var original interface{}
	if err := json.Unmarshal(jsonA, &original); err != nil {
		return nil, err
	}

	var changelog []*PatchOp
	for _, op := range patch {
		patchOp := &PatchOp{
			Op:       op.Type,
			Actor:    actor,
			Path:     op.Path,
			NewValue: op.Value,
		}

		if op.Type == OpRemove || op.Type == OpReplace {
			oldValue, err := getOldValue(original, op.Path)
			if err != nil {
				return nil, err
			}
			patchOp.OldValue = oldValue
		}

		changelog = append(changelog, patchOp)
	}

	return changelog, nil
}

func getOldValue(original interface{}, path string) (interface{}, error) {
	current := original
	for _, part := range parseJSONPointer(path) {
		switch curr := current.(type) {
		case map[string]interface{}:
			current = curr[part]
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid array index: %s", part)
			}
			if index < 0 || index >= len(curr) {
				return nil, fmt.Errorf("index out of range: %d", index)
			}
			current = curr[index]
		default:
			return nil, fmt.Errorf("invalid path: %s", path)
		}
	}

	return current, nil
}

func parseJSONPointer(path string) []string {
	if path == "" {
		return []string{}
	}

	// RFC 6901: drop the leading slash, then unescape ~1 and ~0
	parts := strings.Split(path[1:], "/")
	for i := range parts {
		parts[i] = strings.ReplaceAll(parts[i], "~1", "/")
		parts[i] = strings.ReplaceAll(parts[i], "~0", "~")
	}
	return parts
}
