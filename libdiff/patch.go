package libdiff

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/keyfmt/keymap"
)

// BindingsByKey maps each block key to its bindings.
func BindingsByKey(infos []keymap.BlockInfo) map[string][]string {
	res := make(map[string][]string, len(infos))
	for i, k := range Keys(infos) {
		res[k] = infos[i].Bindings
	}
	return res
}

// MergePatch returns the JSON merge patch (RFC 7386) turning the bindings of
// a into those of b.
func MergePatch(a, b []keymap.BlockInfo) ([]byte, error) {
	from, err := json.Marshal(BindingsByKey(a))
	if err != nil {
		return nil, err
	}
	to, err := json.Marshal(BindingsByKey(b))
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(from, to)
	if err != nil {
		return nil, fmt.Errorf("unable to create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyPatch applies a merge patch produced by MergePatch to the bindings of
// infos.
func ApplyPatch(infos []keymap.BlockInfo, patch []byte) (map[string][]string, error) {
	from, err := json.Marshal(BindingsByKey(infos))
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.MergePatch(from, patch)
	if err != nil {
		return nil, fmt.Errorf("unable to apply merge patch: %w", err)
	}
	res := map[string][]string{}
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, err
	}
	return res, nil
}
