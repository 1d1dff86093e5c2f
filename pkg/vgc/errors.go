package vgc

import "errors"

var (
	ErrTooSmall   = errors.New("vgc: container too small")
	ErrBadMagic   = errors.New("vgc: missing VGC header")
	ErrCompressed = errors.New("vgc: Huffman compression not supported")
	ErrTruncated  = errors.New("vgc: truncated container")
	ErrBadTOC     = errors.New("vgc: malformed TOC")
)
