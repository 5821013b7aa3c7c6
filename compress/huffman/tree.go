// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"container/heap"
	"errors"
)

// ErrEmptyInput is returned when a tree is requested for a histogram without symbols.
var ErrEmptyInput = errors.New("huffman: input is empty")

// Node is a node of a Huffman tree: either a leaf holding one symbol
// or a branch owning exactly two children.
// A branch's weight is the sum of its children's weights.
type Node struct {
	left, right *Node
	weight      uint64
	symbol      byte
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool { return n.left == nil }

// Weight returns the symbol frequency of a leaf or the summed weight of a branch.
func (n *Node) Weight() uint64 { return n.weight }

// Symbol returns the symbol of a leaf. It is meaningless on a branch.
func (n *Node) Symbol() byte { return n.symbol }

// Left returns the left child of a branch, or nil for a leaf.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child of a branch, or nil for a leaf.
func (n *Node) Right() *Node { return n.right }

// BuildTree builds a Huffman tree for the symbols of h.
//
// The two lightest subtrees are merged until one remains. Among equal
// weights the subtree queued first is taken first (leaves are queued in
// ascending symbol order, branches as they are made). The first subtree
// taken becomes the right child and the second the left child.
// With one distinct symbol the root is a lone leaf.
func BuildTree(h *Histogram) (*Node, error) {
	entries := h.Entries()
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}
	q := newNodeQueue(entries)
	seq := len(entries)
	for q.Len() > 1 {
		right := heap.Pop(&q).(queueItem).node
		left := heap.Pop(&q).(queueItem).node
		heap.Push(&q, queueItem{
			node: &Node{left: left, right: right, weight: left.weight + right.weight},
			seq:  seq,
		})
		seq++
	}
	return heap.Pop(&q).(queueItem).node, nil
}

// Walk calls fn for every node of the tree in pre-order, left before right.
// The root has depth 0.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int), depth int) {
	fn(n, depth)
	if n.IsLeaf() {
		return
	}
	n.left.walk(fn, depth+1)
	n.right.walk(fn, depth+1)
}

// Leaves returns the number of leaves.
func (n *Node) Leaves() int {
	num := 0
	n.Walk(func(n *Node, _ int) {
		if n.IsLeaf() {
			num++
		}
	})
	return num
}

// Branches returns the number of branches.
func (n *Node) Branches() int {
	num := 0
	n.Walk(func(n *Node, _ int) {
		if !n.IsLeaf() {
			num++
		}
	})
	return num
}

// Depth returns the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	maxDepth := 0
	n.Walk(func(n *Node, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	return maxDepth
}
