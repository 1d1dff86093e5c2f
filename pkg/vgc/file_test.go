package vgc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMapsWholeFile(t *testing.T) {
	t.Parallel()

	sizes := [NumStreams]int{64, 32, 16, 8, 4, 100, 200, 300}
	want := makeContainer(t, sizes, 0)

	path := filepath.Join(t.TempDir(), "music.vgc")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("write container: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			t.Fatalf("close: %v", cerr)
		}
	}()

	if !bytes.Equal(f.Data, want) {
		t.Fatalf("mapped data does not match file contents")
	}
	if _, err := ParseStreams(f.Data); err != nil {
		t.Fatalf("parse mapped data: %v", err)
	}
}

func TestOpenReaderAt(t *testing.T) {
	t.Parallel()

	sizes := [NumStreams]int{4, 4, 4, 4, 4, 4, 4, 4}
	want := makeContainer(t, sizes, 0)

	f, err := OpenReaderAt(bytes.NewReader(want), int64(len(want)))
	if err != nil {
		t.Fatalf("open readerat: %v", err)
	}
	if f.mmapped {
		t.Fatalf("OpenReaderAt should not mmap")
	}
	if !bytes.Equal(f.Data, want) {
		t.Fatalf("loaded data does not match input")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if f.Data != nil {
		t.Fatalf("data not released on close")
	}
}
