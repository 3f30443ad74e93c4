// SPDX-License-Identifier: MIT
// signature.go — the Contribution Encoder & Sorter (§4.2).
//
// Reduces a cell's length-n contribution sequence to a canonical signature:
// sort the packed keys ascending (a total order, ties retained — the
// multiset is the truth), then hand the sorted sequence to one of two
// admissible fingerprinting strategies. Both strategies guarantee: same
// multiset ⇒ same bucket; different multiset ⇒ different bucket.

package wl

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/gtank/blake2/blake2b"
)

// sortKeys sorts a cell's packed contribution keys ascending in place.
func sortKeys(keys []uint64) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}

// signatureTable assigns fresh, stable color indices to distinct sorted
// contribution sequences within a single pass. It implements both
// admissible strategies from §4.2 behind one interface so the palette
// manager doesn't need to know which is active.
type signatureTable struct {
	strategy Strategy

	// StrategyIntern: exact map on the byte-encoded sorted sequence.
	intern map[string]Color

	// StrategyHash: FNV-1a fingerprint buckets with a full-equality
	// tie-break on collision (the sorted keys are retained per entry).
	buckets map[uint64][]hashEntry

	next Color
}

// hashEntry is one collision-chain member under StrategyHash.
type hashEntry struct {
	keys  []uint64
	color Color
}

func newSignatureTable(strategy Strategy) *signatureTable {
	t := &signatureTable{strategy: strategy}
	switch strategy {
	case StrategyHash, StrategyHashBlake2:
		t.buckets = make(map[uint64][]hashEntry)
	default:
		t.intern = make(map[string]Color)
	}
	return t
}

// assign returns the color index for sortedKeys, creating a new one (the
// next-unused index in this table) on first sight. sortedKeys must already
// be sorted ascending (see sortKeys); this method does not mutate it and
// does not retain the caller's backing array under StrategyIntern.
func (t *signatureTable) assign(sortedKeys []uint64) Color {
	switch t.strategy {
	case StrategyHash, StrategyHashBlake2:
		return t.assignHash(sortedKeys)
	default:
		return t.assignIntern(sortedKeys)
	}
}

func (t *signatureTable) assignIntern(sortedKeys []uint64) Color {
	key := encodeKeys(sortedKeys)
	if c, ok := t.intern[key]; ok {
		return c
	}
	c := t.next
	t.next++
	t.intern[key] = c
	return c
}

func (t *signatureTable) assignHash(sortedKeys []uint64) Color {
	fp := t.fingerprint(sortedKeys)
	for _, e := range t.buckets[fp] {
		if equalKeys(e.keys, sortedKeys) {
			return e.color
		}
	}
	c := t.next
	t.next++
	owned := make([]uint64, len(sortedKeys))
	copy(owned, sortedKeys)
	t.buckets[fp] = append(t.buckets[fp], hashEntry{keys: owned, color: c})
	return c
}

// encodeKeys packs a sorted uint64 sequence into a string usable as a map
// key (Go map keys must be comparable; []uint64 isn't, its byte encoding is).
func encodeKeys(sortedKeys []uint64) string {
	if len(sortedKeys) == 0 {
		return ""
	}
	b := make([]byte, len(sortedKeys)*8)
	for i, k := range sortedKeys {
		binary.BigEndian.PutUint64(b[i*8:], k)
	}
	return string(b)
}

// fingerprint computes a 64-bit hash over the big-endian byte encoding of a
// sorted key sequence, using FNV-1a under StrategyHash and BLAKE2b under
// StrategyHashBlake2.
func (t *signatureTable) fingerprint(sortedKeys []uint64) uint64 {
	if t.strategy == StrategyHashBlake2 {
		return blake2Fingerprint(sortedKeys)
	}
	h := fnv.New64a()
	var b [8]byte
	for _, k := range sortedKeys {
		binary.BigEndian.PutUint64(b[:], k)
		h.Write(b[:])
	}
	return h.Sum64()
}

// blake2Fingerprint hashes sortedKeys with BLAKE2b truncated to 64 bits of
// output. NewDigest only fails on a bad output-length request, which 8 never
// triggers, so the error is not propagated to callers.
func blake2Fingerprint(sortedKeys []uint64) uint64 {
	d, err := blake2b.NewDigest(nil, nil, nil, 8)
	if err != nil {
		panic(fmt.Sprintf("wl: blake2b.NewDigest(8 bytes) unexpectedly failed: %v", err))
	}
	var b [8]byte
	for _, k := range sortedKeys {
		binary.BigEndian.PutUint64(b[:], k)
		d.Write(b[:])
	}
	return binary.BigEndian.Uint64(d.Sum(nil))
}

// equalKeys reports whether two sorted key sequences are identical.
func equalKeys(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
