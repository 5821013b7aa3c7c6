// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// before reports whether a sorts ahead of b: higher count first, then lower symbol.
func before(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Symbol < b.Symbol
}

func quickSortDec(arr []Entry, left int, right int) {
	for left < right {
		if right-left < 16 {
			insertDecSort(arr[left : right+1])
			break
		} else {
			pivot := arr[left]
			i := left + 1
			j := right

			for i <= j {
				if before(pivot, arr[i]) && before(arr[j], pivot) {
					arr[i], arr[j] = arr[j], arr[i]
				}
				if !before(pivot, arr[i]) {
					i++
				}
				if !before(arr[j], pivot) {
					j--
				}
			}

			arr[left], arr[j] = arr[j], arr[left]

			if j-left < right-j {
				quickSortDec(arr, left, j-1)
				left = j + 1
			} else {
				quickSortDec(arr, j+1, right)
				right = j - 1
			}
		}
	}
}

func insertDecSort(arr []Entry) {
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && before(arr[j], arr[j-1]); j-- {
			arr[j-1], arr[j] = arr[j], arr[j-1]
		}
	}
}

func sortDecEntries(arr []Entry) {
	quickSortDec(arr, 0, len(arr)-1)
}
