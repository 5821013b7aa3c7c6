//go:build go1.18
// +build go1.18

package huffman

import (
	"reflect"
	"testing"
)

func FuzzGenerateCodes(f *testing.F) {
	f.Add([]byte("abracadabra"))
	f.Add([]byte{1, 1, 1, 2, 2, 3})
	f.Add(allBytes())
	f.Fuzz(func(t *testing.T, source []byte) {
		h := Count(source)
		root, err := BuildTree(h)
		if len(source) == 0 {
			if err != ErrEmptyInput {
				t.Fatalf("expected ErrEmptyInput, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		codes := GenerateCodes(root)
		checkPrefixFree(t, codes)
		if len(codes) != h.Len() {
			t.Fatalf("expected %d codes, got %d", h.Len(), len(codes))
		}
		if got, want := codes.EncodedBits(h), OptimalBits(h); got != want {
			t.Fatalf("expected optimal %d bits, got %d", want, got)
		}
		again, _ := BuildTree(Count(source))
		if !reflect.DeepEqual(codes, GenerateCodes(again)) {
			t.Fatal("tables differ on same input")
		}
	})
}
