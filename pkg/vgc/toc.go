package vgc

import "fmt"

// EncodeTOC renders the 31-byte table of contents: the "VGC" magic, a
// version byte, three reserved zero bytes, then one record per stream
// index holding the bank id and the little-endian in-bank address.
func EncodeTOC(locations [NumStreams]StreamLocation) []byte {
	toc := make([]byte, 0, TOCSize)
	toc = append(toc, Magic...)
	toc = append(toc, tocVersion, 0, 0, 0)
	for _, loc := range locations {
		toc = append(toc, byte(loc.Bank), byte(loc.Addr), byte(loc.Addr>>8))
	}
	return toc
}

// ParseTOC decodes a TOC image produced by EncodeTOC.
func ParseTOC(data []byte) ([NumStreams]StreamLocation, error) {
	var locations [NumStreams]StreamLocation

	if len(data) != TOCSize {
		return locations, fmt.Errorf("%w: %d bytes, want %d", ErrBadTOC, len(data), TOCSize)
	}
	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] {
		return locations, fmt.Errorf("%w: bad magic", ErrBadTOC)
	}
	if data[3] != tocVersion {
		return locations, fmt.Errorf("%w: unknown version byte %#02x", ErrBadTOC, data[3])
	}

	for i := range locations {
		rec := data[headerSize+i*3:]
		locations[i] = StreamLocation{
			Bank: int(rec[0]),
			Addr: uint16(rec[1]) | uint16(rec[2])<<8,
		}
	}
	return locations, nil
}
