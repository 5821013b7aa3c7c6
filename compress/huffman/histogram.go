// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman builds Huffman prefix codes for byte data.
package huffman

// Histogram counts the occurrences of every byte value.
// A zero count means the byte value does not occur in the input.
type Histogram [256]uint64

// Entry is a symbol together with its non-zero count.
type Entry struct {
	Symbol byte
	Count  uint64
}

// Count returns the histogram of data. Empty data gives an empty histogram.
func Count(data []byte) *Histogram {
	h := &Histogram{}
	h.Add(data)
	return h
}

// Add accumulates the bytes of data into the histogram.
func (h *Histogram) Add(data []byte) {
	for _, b := range data {
		h[b]++
	}
}

// Len returns the number of distinct symbols.
func (h *Histogram) Len() int {
	num := 0
	for _, v := range h {
		if v != 0 {
			num++
		}
	}
	return num
}

// Total returns the number of bytes counted.
func (h *Histogram) Total() uint64 {
	total := uint64(0)
	for _, v := range h {
		total += v
	}
	return total
}

// Entries returns the symbols with a non-zero count in ascending symbol order.
func (h *Histogram) Entries() []Entry {
	entries := make([]Entry, 0, h.Len())
	for i, v := range h {
		if v != 0 {
			entries = append(entries, Entry{Symbol: byte(i), Count: v})
		}
	}
	return entries
}

// SortedEntries returns the symbols with a non-zero count ordered by
// descending count. Equal counts keep ascending symbol order.
func (h *Histogram) SortedEntries() []Entry {
	entries := h.Entries()
	sortDecEntries(entries)
	return entries
}
