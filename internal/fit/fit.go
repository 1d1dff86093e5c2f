// Package fit turns a raw VGC container into bank images and a TOC.
// It is the single entry point the CLI drives; it performs no file
// I/O of its own.
package fit

import (
	"github.com/tom-seddon/vgm-packer/internal/bankpack"
	"github.com/tom-seddon/vgm-packer/internal/logger"
	"github.com/tom-seddon/vgm-packer/pkg/vgc"
)

// Options configure a fit. A zero Capacity means vgc.BankCapacity.
// BankIDs are the physical bank slots available, in assignment order.
type Options struct {
	Capacity int
	BankIDs  []int
	Logger   logger.Logger
}

// BankImage is one output bank keyed by the bank id it loads into.
type BankImage struct {
	ID   int
	Data []byte
}

// Result holds everything a fit produces. Stream payloads and bank
// images alias the input buffer, so it must outlive the result.
type Result struct {
	Streams   [vgc.NumStreams]vgc.Stream
	Banks     []bankpack.Bank
	Images    []BankImage
	Locations [vgc.NumStreams]vgc.StreamLocation
	TOC       []byte
}

// Fit parses data, packs the streams into the fewest banks, and
// renders one image per used bank plus the TOC. Every failure is
// terminal: a non-nil error means nothing was produced.
func Fit(data []byte, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	capacity := opts.Capacity
	if capacity == 0 {
		capacity = vgc.BankCapacity
	}

	streams, err := vgc.ParseStreams(data)
	if err != nil {
		return nil, err
	}
	for _, s := range streams {
		log.Debug("stream", "index", s.Index, "bytes", len(s.Data))
	}

	banks, locations, err := bankpack.Pack(streams, capacity, opts.BankIDs)
	if err != nil {
		return nil, err
	}
	log.Debug("packed", "banks", len(banks))

	res := &Result{
		Streams:   streams,
		Banks:     banks,
		Locations: locations,
		TOC:       vgc.EncodeTOC(locations),
	}
	for i := range banks {
		res.Images = append(res.Images, BankImage{
			ID:   opts.BankIDs[i],
			Data: banks[i].Image(),
		})
	}
	return res, nil
}
