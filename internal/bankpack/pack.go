// Package bankpack assigns VGC streams to fixed-capacity ROM banks.
//
// The stream count is fixed at eight, so the packer just tries every
// permutation (8! = 40320) and keeps the first one, in enumeration
// order, that first-fits into the fewest banks. Enumeration is
// lexicographic over stream positions starting from input order, so
// the winning ordering is reproducible for a given container. Do not
// generalize this to variable stream counts without swapping the
// search for a heuristic.
package bankpack

import (
	"fmt"

	"github.com/tom-seddon/vgm-packer/pkg/vgc"
)

// Bank is one fixed-capacity destination unit. Streams keeps pack
// order; Used is the sum of its payload lengths and never exceeds the
// capacity the bank was packed with.
type Bank struct {
	Streams []vgc.Stream
	Used    int
}

// Image renders the bank payload: the raw concatenation of its
// streams in pack order, with no padding to capacity.
func (b *Bank) Image() []byte {
	img := make([]byte, 0, b.Used)
	for _, s := range b.Streams {
		img = append(img, s.Data...)
	}
	return img
}

// Free returns the bytes left between the end of the bank's data and
// the top of the bank window.
func (b *Bank) Free() int {
	return vgc.BankCapacity - b.Used
}

// StreamTooLargeError reports a stream that exceeds the bank capacity
// on its own and so can never be packed.
type StreamTooLargeError struct {
	Index int
	Size  int
}

func (e *StreamTooLargeError) Error() string {
	return fmt.Sprintf("bankpack: stream %d is %d bytes - data can never fit in a bank", e.Index, e.Size)
}

// InsufficientBanksError reports a minimal packing that needs more
// banks than the caller supplied ids for.
type InsufficientBanksError struct {
	Needed int
	Have   int
}

func (e *InsufficientBanksError) Error() string {
	return fmt.Sprintf("bankpack: data requires %d bank(s) - %d available", e.Needed, e.Have)
}

// Pack finds a minimal-bank assignment of the streams and labels each
// bank with the corresponding caller-supplied bank id. The returned
// locations are in stream-index order; the first stream placed in a
// bank gets address vgc.BankOrigin and each later stream follows the
// previous one's payload. Any error is terminal: no partial result is
// returned.
func Pack(streams [vgc.NumStreams]vgc.Stream, capacity int, bankIDs []int) ([]Bank, [vgc.NumStreams]vgc.StreamLocation, error) {
	var none [vgc.NumStreams]vgc.StreamLocation

	if capacity <= 0 {
		return nil, none, fmt.Errorf("bankpack: capacity %d out of range", capacity)
	}
	for _, s := range streams {
		if len(s.Data) > capacity {
			return nil, none, &StreamTooLargeError{Index: s.Index, Size: len(s.Data)}
		}
	}

	order := bestOrder(streams, capacity)

	// Re-run first-fit on the winning ordering to materialize the
	// banks and per-stream addresses.
	var locations [vgc.NumStreams]vgc.StreamLocation
	bankIndex := make([]int, vgc.NumStreams)
	var banks []Bank
	for _, s := range order {
		if len(banks) == 0 || banks[len(banks)-1].Used+len(s.Data) > capacity {
			banks = append(banks, Bank{})
		}
		b := &banks[len(banks)-1]
		bankIndex[s.Index] = len(banks) - 1
		locations[s.Index] = vgc.StreamLocation{Addr: uint16(vgc.BankOrigin + b.Used)}
		b.Streams = append(b.Streams, s)
		b.Used += len(s.Data)
	}

	if len(banks) > len(bankIDs) {
		return nil, none, &InsufficientBanksError{Needed: len(banks), Have: len(bankIDs)}
	}
	for i := range locations {
		locations[i].Bank = bankIDs[bankIndex[i]]
	}
	return banks, locations, nil
}

// bestOrder returns the first permutation, in lexicographic order
// over stream positions, whose first-fit simulation uses the fewest
// banks. Later ties never replace an earlier winner.
func bestOrder(streams [vgc.NumStreams]vgc.Stream, capacity int) [vgc.NumStreams]vgc.Stream {
	var perm, best [vgc.NumStreams]int
	for i := range perm {
		perm[i] = i
	}
	bestBanks := vgc.NumStreams + 1

	for ok := true; ok; ok = nextPerm(&perm) {
		used := 0
		nbanks := 1
		for _, idx := range perm {
			n := len(streams[idx].Data)
			if used+n > capacity {
				nbanks++
				used = 0
			}
			used += n
		}
		if nbanks < bestBanks {
			bestBanks = nbanks
			best = perm
		}
	}

	var order [vgc.NumStreams]vgc.Stream
	for i, idx := range best {
		order[i] = streams[idx]
	}
	return order
}

// nextPerm advances perm to its next lexicographic permutation,
// reporting false once the last one has been visited.
func nextPerm(perm *[vgc.NumStreams]int) bool {
	i := len(perm) - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(perm) - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	for l, r := i+1, len(perm)-1; l < r; l, r = l+1, r-1 {
		perm[l], perm[r] = perm[r], perm[l]
	}
	return true
}
