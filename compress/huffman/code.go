// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Table maps every symbol of a tree to its code, a string of '0' and '1'.
type Table map[byte]string

// GenerateCodes walks the tree from root and returns the code of every leaf.
// Going left appends '0' and going right appends '1'.
// A lone leaf root is given the code "0".
func GenerateCodes(root *Node) Table {
	codes := make(Table)
	if root.IsLeaf() {
		codes[root.symbol] = "0"
		return codes
	}
	buildCode("", root, codes)
	return codes
}

func buildCode(prefix string, n *Node, codes Table) {
	if n.IsLeaf() {
		codes[n.symbol] = prefix
		return
	}
	buildCode(prefix+"0", n.left, codes)
	buildCode(prefix+"1", n.right, codes)
}

// Code returns the code of sym. The table is complete for the histogram it was
// built from, so a missing symbol is a programming error and Code panics.
func (t Table) Code(sym byte) string {
	code, ok := t[sym]
	if !ok {
		panic(fmt.Sprintf("huffman: no code for symbol %d", sym))
	}
	return code
}

// Symbols returns the symbols of the table in ascending order.
func (t Table) Symbols() []byte {
	syms := make([]byte, 0, len(t))
	for i := 0; i < 256; i++ {
		if _, ok := t[byte(i)]; ok {
			syms = append(syms, byte(i))
		}
	}
	return syms
}

// Lengths returns the code length of every symbol, zero for absent ones.
func (t Table) Lengths() [256]uint32 {
	var lens [256]uint32
	for sym, code := range t {
		lens[sym] = uint32(len(code))
	}
	return lens
}

// EncodedBits returns the number of bits needed to encode the data h was counted from.
func (t Table) EncodedBits(h *Histogram) uint64 {
	bits := uint64(0)
	for _, e := range h.Entries() {
		bits += e.Count * uint64(len(t.Code(e.Symbol)))
	}
	return bits
}

// Fingerprint returns an xxhash-64 digest of the table. Equal tables have
// equal fingerprints.
func (t Table) Fingerprint() uint64 {
	d := xxhash.New()
	for _, sym := range t.Symbols() {
		d.WriteString(strconv.Itoa(int(sym)))
		d.WriteString(":")
		d.WriteString(t[sym])
		d.WriteString("\n")
	}
	return d.Sum64()
}
