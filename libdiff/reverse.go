package libdiff

// Reverse returns diffs going from To to From.
func Reverse(diffs []*BlockDiff) []*BlockDiff {
	res := make([]*BlockDiff, 0, len(diffs))
	for _, d := range diffs {
		rev := &BlockDiff{Key: d.Key, From: d.To, To: d.From}
		for _, l := range d.Lines {
			switch l.Op {
			case Insert:
				l.Op = Delete
			case Delete:
				l.Op = Insert
			}
			rev.Lines = append(rev.Lines, l)
		}
		res = append(res, rev)
	}
	return res
}
