// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// MinimumRedundancyLengths returns the optimal code length of every symbol of h,
// zero for absent ones. It does not build a tree, so it serves as an independent
// reference for the lengths a Huffman tree must reach.
// A single symbol gets length 1.
//
// It implements In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
func MinimumRedundancyLengths(h *Histogram) [256]uint32 {
	entries := h.SortedEntries()
	w := make([]uint64, len(entries))
	for i, e := range entries {
		w[i] = e.Count
	}
	codeLens(w)
	var lens [256]uint32
	for i, e := range entries {
		lens[e.Symbol] = uint32(w[i])
	}
	return lens
}

// OptimalBits returns the minimum number of bits any prefix code needs
// for the data h was counted from.
func OptimalBits(h *Histogram) uint64 {
	lens := MinimumRedundancyLengths(h)
	bits := uint64(0)
	for sym, count := range h {
		bits += count * uint64(lens[sym])
	}
	return bits
}

// codeLens replaces the weights in w, sorted in descending order, with their code lengths.
func codeLens(w []uint64) uint64 {
	// phase 1
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := 0
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth depth
		for ; root < n && w[root] == uint64(depth); root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = uint64(depth)
			next = next + 1
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[len(w)-1]
}
