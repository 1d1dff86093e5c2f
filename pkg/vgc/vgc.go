// Package vgc implements the VGC multi-stream container format.
//
// A VGC container holds exactly eight interleaved music data streams
// behind a small magic-tagged header. This package splits a container
// into its streams and encodes/decodes the table of contents that
// records where each stream lands after bank packing. Stream payloads
// are opaque; nothing beyond the segment framing is interpreted.
package vgc

const (
	// Magic is the three-byte tag at the start of every container and
	// TOC image.
	Magic = "VGC"

	// NumStreams is fixed by the format: the header is followed by
	// exactly eight segments and the TOC carries exactly eight
	// records. There is no count field.
	NumStreams = 8

	// headerSize covers the magic, the flags byte and a three-byte
	// reserved field. Segment data starts immediately after.
	headerSize = 7

	// flagCompressed marks a Huffman-compressed container, which this
	// package does not support.
	flagCompressed = 0x80

	// BankCapacity is the size of one sideways ROM bank. Every bank
	// has this capacity; it is not configurable per bank.
	BankCapacity = 16384

	// BankOrigin is the address a bank is mapped at. The first stream
	// placed in a bank lives here.
	BankOrigin = 0x8000

	// TOCSize is the fixed size of a TOC image: a seven-byte header
	// plus three bytes per stream.
	TOCSize = headerSize + NumStreams*3

	tocVersion = 0x20
)

// Stream is one of the eight opaque segments of a container. Data is
// the full segment, including its leading length field and the four
// trailing bytes the stored length under-counts.
type Stream struct {
	Index int
	Data  []byte
}

// StreamLocation records the bank id and in-bank address a stream was
// packed to. The TOC is eight of these in stream-index order.
type StreamLocation struct {
	Bank int
	Addr uint16
}
