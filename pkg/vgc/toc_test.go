package vgc

import (
	"errors"
	"testing"
)

func TestEncodeTOCLayout(t *testing.T) {
	t.Parallel()

	var locations [NumStreams]StreamLocation
	for i := range locations {
		locations[i] = StreamLocation{
			Bank: 4 + i%4,
			Addr: uint16(0x8000 + i*0x123),
		}
	}

	toc := EncodeTOC(locations)
	if len(toc) != TOCSize {
		t.Fatalf("TOC is %d bytes, want %d", len(toc), TOCSize)
	}
	if toc[0] != 'V' || toc[1] != 'G' || toc[2] != 'C' {
		t.Fatalf("bad magic: %x", toc[:3])
	}
	if toc[3] != 0x20 {
		t.Fatalf("version byte %#02x, want 0x20", toc[3])
	}
	if toc[4] != 0 || toc[5] != 0 || toc[6] != 0 {
		t.Fatalf("reserved bytes not zero: %x", toc[4:7])
	}
	for i, loc := range locations {
		rec := toc[7+i*3:]
		if rec[0] != byte(loc.Bank) {
			t.Fatalf("stream %d: bank byte %#02x, want %#02x", i, rec[0], loc.Bank)
		}
		if rec[1] != byte(loc.Addr) || rec[2] != byte(loc.Addr>>8) {
			t.Fatalf("stream %d: address is not little-endian: %x", i, rec[1:3])
		}
	}
}

func TestParseTOCRoundTrip(t *testing.T) {
	t.Parallel()

	var locations [NumStreams]StreamLocation
	for i := range locations {
		locations[i] = StreamLocation{Bank: 15 - i, Addr: uint16(0x8000 + i*2048)}
	}

	decoded, err := ParseTOC(EncodeTOC(locations))
	if err != nil {
		t.Fatalf("parse TOC: %v", err)
	}
	if decoded != locations {
		t.Fatalf("round trip mismatch: got %+v want %+v", decoded, locations)
	}
}

func TestParseTOCErrors(t *testing.T) {
	t.Parallel()

	var locations [NumStreams]StreamLocation
	good := EncodeTOC(locations)

	if _, err := ParseTOC(good[:TOCSize-1]); !errors.Is(err, ErrBadTOC) {
		t.Fatalf("short TOC: got %v, want ErrBadTOC", err)
	}

	bad := append([]byte(nil), good...)
	bad[0] = 'X'
	if _, err := ParseTOC(bad); !errors.Is(err, ErrBadTOC) {
		t.Fatalf("bad magic: got %v, want ErrBadTOC", err)
	}

	bad = append([]byte(nil), good...)
	bad[3] = 0x21
	if _, err := ParseTOC(bad); !errors.Is(err, ErrBadTOC) {
		t.Fatalf("bad version: got %v, want ErrBadTOC", err)
	}
}
