package unionfind

import "github.com/petar/GoLLRB/llrb"

// rootLabel is an llrb.Item wrapping a live root label, ordered numerically.
type rootLabel uint32

func (r rootLabel) Less(than llrb.Item) bool {
	return r < than.(rootLabel)
}

// SampleConnectedPairs returns up to k pairs of connected labels. It scans
// labels in order and pairs each label with the first earlier label of the
// same component, so a component with m scanned members contributes up to
// m-1 pairs; the scan stops once k pairs are collected. The roots it meets
// are also inserted into an llrb.LLRB, which does not affect the result.
func (o *Oracle) SampleConnectedPairs(labels []uint32, k int) [][2]uint32 {
	byRoot := make(map[uint32]uint32, len(labels))
	seen := llrb.New()

	var pairs [][2]uint32
	for _, label := range labels {
		if len(pairs) >= k {
			break
		}
		root := o.Find(label)
		if other, ok := byRoot[root]; ok {
			pairs = append(pairs, [2]uint32{other, label})
			continue
		}
		byRoot[root] = label
		seen.ReplaceOrInsert(rootLabel(root))
	}
	return pairs
}

// Components returns the number of distinct sets currently observed among
// labels, without mutating the oracle beyond path compression.
func (o *Oracle) Components(labels []uint32) int {
	seen := llrb.New()
	for _, label := range labels {
		seen.ReplaceOrInsert(rootLabel(o.Find(label)))
	}
	return seen.Len()
}
