// SPDX-License-Identifier: MIT
// signature_test.go verifies the Contribution Encoder & Sorter: sorting is a
// total order over the multiset, and both admissible strategies agree on
// same-multiset-same-bucket / different-multiset-different-bucket.

package wl

import (
	"testing"
)

func TestSortKeys_AscendingWithTiesRetained(t *testing.T) {
	keys := []uint64{5, 1, 1, 3, 2, 5}
	sortKeys(keys)
	want := []uint64{1, 1, 2, 3, 5, 5}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("sortKeys result = %v, want %v", keys, want)
		}
	}
}

func TestEncodeKeys_EmptyAndRoundTrippable(t *testing.T) {
	if got := encodeKeys(nil); got != "" {
		t.Fatalf("encodeKeys(nil) = %q, want empty string", got)
	}
	a := encodeKeys([]uint64{1, 2, 3})
	b := encodeKeys([]uint64{1, 2, 3})
	if a != b {
		t.Fatalf("encodeKeys not stable across calls for identical input")
	}
	c := encodeKeys([]uint64{1, 2, 4})
	if a == c {
		t.Fatalf("encodeKeys collided for distinct sequences")
	}
}

func TestFingerprint_SameMultisetSameFingerprint(t *testing.T) {
	a := []uint64{7, 3, 9, 3}
	b := []uint64{7, 3, 9, 3}
	sortKeys(a)
	sortKeys(b)
	tbl := newSignatureTable(StrategyHash)
	if tbl.fingerprint(a) != tbl.fingerprint(b) {
		t.Fatalf("fingerprint differs for identical sorted sequences")
	}
}

func TestSignatureTable_InternAssignsStableColors(t *testing.T) {
	tbl := newSignatureTable(StrategyIntern)
	c1 := tbl.assign([]uint64{1, 2, 3})
	c2 := tbl.assign([]uint64{1, 2, 3})
	c3 := tbl.assign([]uint64{4, 5, 6})
	if c1 != c2 {
		t.Fatalf("intern strategy assigned different colors to identical signatures: %d vs %d", c1, c2)
	}
	if c1 == c3 {
		t.Fatalf("intern strategy assigned the same color to distinct signatures")
	}
}

func TestSignatureTable_HashAssignsStableColors(t *testing.T) {
	tbl := newSignatureTable(StrategyHash)
	c1 := tbl.assign([]uint64{1, 2, 3})
	c2 := tbl.assign([]uint64{1, 2, 3})
	c3 := tbl.assign([]uint64{4, 5, 6})
	if c1 != c2 {
		t.Fatalf("hash strategy assigned different colors to identical signatures: %d vs %d", c1, c2)
	}
	if c1 == c3 {
		t.Fatalf("hash strategy assigned the same color to distinct signatures")
	}
}

func TestSignatureTable_Blake2AssignsStableColors(t *testing.T) {
	tbl := newSignatureTable(StrategyHashBlake2)
	c1 := tbl.assign([]uint64{1, 2, 3})
	c2 := tbl.assign([]uint64{1, 2, 3})
	c3 := tbl.assign([]uint64{4, 5, 6})
	if c1 != c2 {
		t.Fatalf("blake2 strategy assigned different colors to identical signatures: %d vs %d", c1, c2)
	}
	if c1 == c3 {
		t.Fatalf("blake2 strategy assigned the same color to distinct signatures")
	}
}

func TestBlake2Fingerprint_SameMultisetSameFingerprint(t *testing.T) {
	a := []uint64{7, 3, 9, 3}
	b := []uint64{7, 3, 9, 3}
	sortKeys(a)
	sortKeys(b)
	if blake2Fingerprint(a) != blake2Fingerprint(b) {
		t.Fatalf("blake2Fingerprint differs for identical sorted sequences")
	}
	if blake2Fingerprint(a) == blake2Fingerprint([]uint64{1, 2}) {
		t.Fatalf("blake2Fingerprint collided for clearly distinct sequences")
	}
}

func TestSignatureTable_HashDoesNotRetainCallersBackingArray(t *testing.T) {
	tbl := newSignatureTable(StrategyHash)
	keys := []uint64{9, 8, 7}
	c1 := tbl.assign(keys)
	keys[0] = 0 // mutate caller's buffer after assign returns
	c2 := tbl.assign([]uint64{9, 8, 7})
	if c1 != c2 {
		t.Fatalf("mutating caller's buffer after assign changed the stored signature's identity")
	}
}

func TestEqualKeys(t *testing.T) {
	if !equalKeys([]uint64{1, 2}, []uint64{1, 2}) {
		t.Fatalf("equalKeys reported false for identical slices")
	}
	if equalKeys([]uint64{1, 2}, []uint64{1, 3}) {
		t.Fatalf("equalKeys reported true for differing slices")
	}
	if equalKeys([]uint64{1, 2}, []uint64{1}) {
		t.Fatalf("equalKeys reported true for differing lengths")
	}
}
