// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func opticks(t testing.TB) (data []byte) {
	data, _ = os.ReadFile(filepath.Join(runtime.GOROOT(), "src", "testdata", "Isaac.Newton-Opticks.txt"))
	if data == nil {
		t.Skip("skip for no test data file")
	}
	return data
}

func TestCount(t *testing.T) {
	h := Count([]byte{1, 1, 1, 2, 2, 3})
	if h.Len() != 3 {
		t.Fatalf("expected 3 symbols, got %d", h.Len())
	}
	if h.Total() != 6 {
		t.Fatalf("expected 6 bytes, got %d", h.Total())
	}
	expected := []Entry{{1, 3}, {2, 2}, {3, 1}}
	if got := h.Entries(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v got %v", expected, got)
	}
}

func TestCountEmpty(t *testing.T) {
	h := Count(nil)
	if h.Len() != 0 || h.Total() != 0 {
		t.Fatalf("expected empty histogram, got %d symbols %d bytes", h.Len(), h.Total())
	}
	if entries := h.Entries(); len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestCountChunked(t *testing.T) {
	data := opticks(t)
	whole := Count(data)
	var chunked Histogram
	for i := 0; i < len(data); i += 4096 {
		end := i + 4096
		if end > len(data) {
			end = len(data)
		}
		chunked.Add(data[i:end])
	}
	if !reflect.DeepEqual(*whole, chunked) {
		t.Fatal("chunked histogram differs from whole histogram")
	}
	if whole.Total() != uint64(len(data)) {
		t.Fatalf("expected total %d got %d", len(data), whole.Total())
	}
}

func TestSortedEntries(t *testing.T) {
	h := Count([]byte("abracadabra"))
	expected := []Entry{{'a', 5}, {'b', 2}, {'r', 2}, {'c', 1}, {'d', 1}}
	if got := h.SortedEntries(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v got %v", expected, got)
	}
}

func TestSortedEntriesAllSymbols(t *testing.T) {
	var h Histogram
	for i := range h {
		h[i] = uint64(i%7 + 1)
	}
	entries := h.SortedEntries()
	if len(entries) != 256 {
		t.Fatalf("expected 256 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if !before(entries[i-1], entries[i]) {
			t.Fatalf("entries out of order at %d: %v %v", i, entries[i-1], entries[i])
		}
	}
}
