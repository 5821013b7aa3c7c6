// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "container/heap"

// queueItem is a pending subtree. seq orders items of equal weight:
// leaves are numbered in ascending symbol order, every new branch takes
// the next number, and the lowest number leaves the queue first.
type queueItem struct {
	node *Node
	seq  int
}

// nodeQueue is a min-queue of subtrees keyed on weight, for use with container/heap.
type nodeQueue []queueItem

func newNodeQueue(entries []Entry) nodeQueue {
	q := make(nodeQueue, len(entries), 2*len(entries))
	for i, e := range entries {
		q[i] = queueItem{
			node: &Node{weight: e.Count, symbol: e.Symbol},
			seq:  i,
		}
	}
	heap.Init(&q)
	return q
}

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.weight != q[j].node.weight {
		return q[i].node.weight < q[j].node.weight
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[0 : n-1]
	return x
}
