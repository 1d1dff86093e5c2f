package vgc

import (
	"bytes"
	"errors"
	"testing"
)

// makeContainer builds a container whose eight segments have the
// given total payload sizes (each must be >= 4: the stored length
// field under-counts by 4). Payload bytes are filled with the stream
// index so slicing mistakes show up as content mismatches.
func makeContainer(t *testing.T, sizes [NumStreams]int, flags byte) []byte {
	t.Helper()

	data := []byte{'V', 'G', 'C', flags, 0, 0, 0}
	for i, size := range sizes {
		if size < 4 {
			t.Fatalf("segment %d size %d below format minimum", i, size)
		}
		n := size - 4
		seg := make([]byte, size)
		seg[0] = byte(n)
		seg[1] = byte(n >> 8)
		for j := 2; j < size; j++ {
			seg[j] = byte(i)
		}
		data = append(data, seg...)
	}
	return data
}

func TestParseStreams(t *testing.T) {
	t.Parallel()

	sizes := [NumStreams]int{10, 4, 100, 31, 5, 6, 7, 2048}
	data := makeContainer(t, sizes, 0)

	streams, err := ParseStreams(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	offset := 7
	for i, s := range streams {
		if s.Index != i {
			t.Fatalf("stream %d: index %d", i, s.Index)
		}
		if len(s.Data) != sizes[i] {
			t.Fatalf("stream %d: %d bytes, want %d", i, len(s.Data), sizes[i])
		}
		if !bytes.Equal(s.Data, data[offset:offset+sizes[i]]) {
			t.Fatalf("stream %d: payload does not match container bytes", i)
		}
		// The length field is part of the payload.
		n := sizes[i] - 4
		if s.Data[0] != byte(n) || s.Data[1] != byte(n>>8) {
			t.Fatalf("stream %d: length field not retained", i)
		}
		offset += sizes[i]
	}
	if offset != len(data) {
		t.Fatalf("segments end at %d, container is %d bytes", offset, len(data))
	}
}

func TestParseStreamsTooSmall(t *testing.T) {
	t.Parallel()

	if _, err := ParseStreams([]byte{'V', 'G', 'C'}); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("got %v, want ErrTooSmall", err)
	}
}

func TestParseStreamsBadMagic(t *testing.T) {
	t.Parallel()

	sizes := [NumStreams]int{4, 4, 4, 4, 4, 4, 4, 4}
	data := makeContainer(t, sizes, 0)
	data[2] = 'D'
	if _, err := ParseStreams(data); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}

func TestParseStreamsCompressed(t *testing.T) {
	t.Parallel()

	sizes := [NumStreams]int{4, 4, 4, 4, 4, 4, 4, 4}
	data := makeContainer(t, sizes, 0x80)
	if _, err := ParseStreams(data); !errors.Is(err, ErrCompressed) {
		t.Fatalf("got %v, want ErrCompressed", err)
	}
}

func TestParseStreamsTruncated(t *testing.T) {
	t.Parallel()

	sizes := [NumStreams]int{16, 16, 16, 16, 16, 16, 16, 16}
	data := makeContainer(t, sizes, 0)

	// Chop the last segment short.
	if _, err := ParseStreams(data[:len(data)-1]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}

	// Header only: no room for the first length field.
	if _, err := ParseStreams(data[:7]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}
