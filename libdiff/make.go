package libdiff

import (
	"strconv"

	"github.com/signadot/keyfmt/debug"
	"github.com/signadot/keyfmt/keymap"
)

// BlockDiff is the difference between the bindings of two blocks sharing a
// key. From is nil for an added block, To for a removed one.
type BlockDiff struct {
	Key   string
	From  *keymap.BlockInfo
	To    *keymap.BlockInfo
	Lines []Line
}

// MakeDiff returns nil when from and to hold the same bindings.
func MakeDiff(key string, from, to *keymap.BlockInfo) *BlockDiff {
	var a, b []string
	if from != nil {
		a = from.Bindings
	}
	if to != nil {
		b = to.Bindings
	}
	lines := DiffLines(a, b)
	if lines == nil && (from == nil) == (to == nil) {
		return nil
	}
	return &BlockDiff{Key: key, From: from, To: to, Lines: lines}
}

// Keys names each block by its label, or by "#n" for the n-th unlabeled
// block. Repeated labels get a "#n" suffix from their second occurrence.
func Keys(infos []keymap.BlockInfo) []string {
	res := make([]string, len(infos))
	seen := map[string]int{}
	unlabeled := 0
	for i := range infos {
		label := infos[i].Label
		if label == "" {
			unlabeled++
			res[i] = "#" + strconv.Itoa(unlabeled)
			continue
		}
		seen[label]++
		if n := seen[label]; n > 1 {
			res[i] = label + "#" + strconv.Itoa(n)
			continue
		}
		res[i] = label
	}
	return res
}

// Diff pairs the blocks of a and b by key and returns the pairs that differ,
// in the order of a followed by blocks only in b.
func Diff(a, b []keymap.BlockInfo) []*BlockDiff {
	aKeys, bKeys := Keys(a), Keys(b)
	bIndex := make(map[string]int, len(b))
	for i, k := range bKeys {
		bIndex[k] = i
	}
	var res []*BlockDiff
	done := map[string]bool{}
	for i, k := range aKeys {
		var to *keymap.BlockInfo
		if j, ok := bIndex[k]; ok {
			to = &b[j]
		}
		done[k] = true
		if d := MakeDiff(k, &a[i], to); d != nil {
			res = append(res, d)
		}
	}
	for j, k := range bKeys {
		if done[k] {
			continue
		}
		res = append(res, MakeDiff(k, nil, &b[j]))
	}
	if debug.Diff() {
		debug.Logf("diff %d vs %d blocks: %d differ\n", len(a), len(b), len(res))
		debug.LogAny(map[string][]string{"from": aKeys, "to": bKeys})
	}
	return res
}
