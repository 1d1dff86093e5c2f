package vgc

import "fmt"

// ParseStreams splits a raw container into its eight streams.
//
// Layout: "VGC", one flags byte, three reserved bytes, then eight
// segments back to back. Each segment starts with a 16-bit
// little-endian length n and occupies n+4 bytes in total: the stored
// length under-counts a trailing four-byte sub-structure that must
// stay with the payload. The returned payloads are subslices of data
// covering whole segments, length field included, and remain valid
// only as long as data does.
func ParseStreams(data []byte) ([NumStreams]Stream, error) {
	var streams [NumStreams]Stream

	if len(data) < 4 {
		return streams, ErrTooSmall
	}
	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] {
		return streams, ErrBadMagic
	}
	if data[3]&flagCompressed != 0 {
		return streams, ErrCompressed
	}

	// Walk the segment chain, recording nine offsets: eight segment
	// starts plus the final end.
	var starts [NumStreams + 1]int
	offset := headerSize
	for i := 0; i < NumStreams; i++ {
		starts[i] = offset
		if offset+2 > len(data) {
			return streams, fmt.Errorf("%w: no length field for segment %d", ErrTruncated, i)
		}
		n := int(data[offset]) | int(data[offset+1])<<8
		offset += n + 4
		if offset > len(data) {
			return streams, fmt.Errorf("%w: segment %d runs past end of file", ErrTruncated, i)
		}
	}
	starts[NumStreams] = offset

	for i := 0; i < NumStreams; i++ {
		streams[i] = Stream{Index: i, Data: data[starts[i]:starts[i+1]]}
	}
	return streams, nil
}
