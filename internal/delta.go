package internal

import (
	"sort"
	"strings"
)

// DeltaAccumulator reassembles an ordered text stream from
// sequence-numbered fragments that may arrive out of order or duplicated.
type DeltaAccumulator struct {
	fragments map[int]string
}

// NewDeltaAccumulator creates a new DeltaAccumulator
func NewDeltaAccumulator() *DeltaAccumulator {
	return &DeltaAccumulator{
		fragments: make(map[int]string),
	}
}

// AddDelta stores a fragment at its sequence number, overwriting any
// previous fragment there, and returns the full reconstructed text.
// Reconstruction is full on every call rather than an append fast path:
// the fast path cannot resume correctly once delivery transitions from
// out-of-order back to in-order without re-validating the whole prefix.
// Gaps are not blocked on; absent sequence numbers are simply omitted.
func (a *DeltaAccumulator) AddDelta(sequence int, fragment string) string {
	if sequence < 0 {
		LogDebug("Ignoring delta with negative sequence %d", sequence)
		return a.Reconstruct()
	}

	a.fragments[sequence] = fragment
	return a.Reconstruct()
}

// Reconstruct concatenates all stored fragments in ascending sequence order
func (a *DeltaAccumulator) Reconstruct() string {
	if len(a.fragments) == 0 {
		return ""
	}

	sequences := make([]int, 0, len(a.fragments))
	for seq := range a.fragments {
		sequences = append(sequences, seq)
	}
	sort.Ints(sequences)

	var b strings.Builder
	for _, seq := range sequences {
		b.WriteString(a.fragments[seq])
	}
	return b.String()
}

// Len returns the number of fragments currently stored
func (a *DeltaAccumulator) Len() int {
	return len(a.fragments)
}

// Clear resets the accumulator to empty
func (a *DeltaAccumulator) Clear() {
	a.fragments = make(map[int]string)
}
