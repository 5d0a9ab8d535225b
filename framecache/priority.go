package framecache

import "sort"

// PriorityIndices returns the frames loaded before everything else: the
// first head frames, one frame at every 1/percentiles step of the sequence
// and the last tail frames. The result is sorted and free of duplicates.
func PriorityIndices(n, head, tail, percentiles int) []int {
	if n <= 0 {
		return nil
	}
	seen := make(map[int]struct{})
	add := func(i int) {
		if i >= 0 && i < n {
			seen[i] = struct{}{}
		}
	}
	for i := 0; i < head; i++ {
		add(i)
	}
	if percentiles > 0 {
		for k := 1; k < percentiles; k++ {
			add(k * (n - 1) / percentiles)
		}
	}
	for i := n - tail; i < n; i++ {
		add(i)
	}
	// frame 0 and the last frame gate first paint and the final state
	add(0)
	add(n - 1)

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Batches splits the indices not in skip into groups of size
func Batches(n, size int, skip []int) [][]int {
	if size <= 0 {
		size = 1
	}
	skipped := make(map[int]struct{}, len(skip))
	for _, i := range skip {
		skipped[i] = struct{}{}
	}
	var (
		out   [][]int
		batch []int
	)
	for i := 0; i < n; i++ {
		if _, ok := skipped[i]; ok {
			continue
		}
		batch = append(batch, i)
		if len(batch) == size {
			out = append(out, batch)
			batch = nil
		}
	}
	if len(batch) > 0 {
		out = append(out, batch)
	}
	return out
}
