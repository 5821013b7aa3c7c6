// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffcode builds the Huffman code of a byte sequence. It chains the
// frequency counter, the tree builder and the code generator of
// package huffman and keeps their results together.
package huffcode

import "github.com/intel/huffcode/compress/huffman"

// ErrEmptyInput is returned by Build for zero-length data.
var ErrEmptyInput = huffman.ErrEmptyInput

// Model holds the histogram, tree and code table of one input.
type Model struct {
	Histogram *huffman.Histogram
	Root      *huffman.Node
	Table     huffman.Table
}

// Build counts data, builds its Huffman tree and generates the code table.
// The data is not retained.
func Build(data []byte) (*Model, error) {
	h := huffman.Count(data)
	root, err := huffman.BuildTree(h)
	if err != nil {
		return nil, err
	}
	return &Model{
		Histogram: h,
		Root:      root,
		Table:     huffman.GenerateCodes(root),
	}, nil
}

// EncodedBits returns the size in bits of the input encoded with the table.
func (m *Model) EncodedBits() uint64 {
	return m.Table.EncodedBits(m.Histogram)
}

// OptimalBits returns the minimum size in bits of the input under any prefix code.
func (m *Model) OptimalBits() uint64 {
	return huffman.OptimalBits(m.Histogram)
}

// Ratio returns the encoded size in whole bytes divided by the input size.
func (m *Model) Ratio() float64 {
	encoded := (m.EncodedBits() + 7) / 8
	return float64(encoded) / float64(m.Histogram.Total())
}
