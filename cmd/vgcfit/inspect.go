package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/tom-seddon/vgm-packer/internal/bankpack"
	"github.com/tom-seddon/vgm-packer/internal/fit"
	"github.com/tom-seddon/vgm-packer/pkg/vgc"
)

type inspectReport struct {
	Streams []streamJSON `json:"streams"`
	Banks   []bankJSON   `json:"banks,omitempty"`
}

type streamJSON struct {
	Index int `json:"index"`
	Bytes int `json:"bytes"`
}

type bankJSON struct {
	ID      int          `json:"id"`
	Used    int          `json:"used"`
	Free    int          `json:"free"`
	Streams []placedJSON `json:"streams"`
}

type placedJSON struct {
	Index int    `json:"index"`
	Addr  uint16 `json:"addr"`
	Bytes int    `json:"bytes"`
}

type tocJSON struct {
	Stream int    `json:"stream"`
	Bank   int    `json:"bank"`
	Addr   uint16 `json:"addr"`
}

func inspectCmd() *cli.Command {
	var (
		asJSON bool
		asTOC  bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "emit a machine-readable report",
			Destination: &asJSON,
		},
		&cli.BoolFlag{
			Name:        "toc",
			Usage:       "treat the input as a TOC image (implied by a .toc.dat suffix)",
			Destination: &asTOC,
		},
	}
	flags = append(flags, commonFlags()...)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Report a container's streams and pack plan without writing anything",
		ArgsUsage: "VGC-FILE | TOC-FILE",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			inputPath := cmd.Args().First()

			applyConfig(cmd, LoadConfig())
			log := buildLogger()

			if asTOC || strings.HasSuffix(inputPath, ".toc.dat") {
				data, err := os.ReadFile(inputPath)
				if err != nil {
					return err
				}
				locations, err := vgc.ParseTOC(data)
				if err != nil {
					return err
				}
				if asJSON {
					entries := make([]tocJSON, len(locations))
					for i, loc := range locations {
						entries[i] = tocJSON{Stream: i, Bank: loc.Bank, Addr: loc.Addr}
					}
					return writeJSON(entries)
				}
				printTOC(os.Stdout, locations)
				return nil
			}

			bankIDs, err := bankpack.ParseBankIDs(banksArg)
			if err != nil {
				return err
			}

			f, err := vgc.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", inputPath, err)
			}
			defer func() { _ = f.Close() }()

			streams, err := vgc.ParseStreams(f.Data)
			if err != nil {
				return err
			}

			report := inspectReport{}
			for _, s := range streams {
				report.Streams = append(report.Streams, streamJSON{Index: s.Index, Bytes: len(s.Data)})
			}

			// The plan is advisory here: a container that doesn't
			// pack is still worth inspecting.
			banks, locations, packErr := bankpack.Pack(streams, vgc.BankCapacity, bankIDs)
			if packErr != nil {
				log.Warn("container does not pack", "banks", banksArg, "err", packErr)
			}
			for i := range banks {
				bj := bankJSON{ID: bankIDs[i], Used: banks[i].Used, Free: banks[i].Free()}
				for _, s := range banks[i].Streams {
					bj.Streams = append(bj.Streams, placedJSON{
						Index: s.Index,
						Addr:  locations[s.Index].Addr,
						Bytes: len(s.Data),
					})
				}
				report.Banks = append(report.Banks, bj)
			}

			if asJSON {
				return writeJSON(report)
			}

			if packErr == nil {
				printReport(os.Stdout, &fit.Result{
					Streams:   streams,
					Banks:     banks,
					Images:    bankImages(banks, bankIDs),
					Locations: locations,
				})
				return nil
			}

			// No plan; still show the stream sizes.
			tw := newTable("Stream", "Bytes")
			for _, s := range streams {
				tw.AppendRow(table.Row{s.Index, len(s.Data)})
			}
			fmt.Fprintln(os.Stdout, tw.Render())
			return packErr
		},
	}
}

// bankImages pairs banks with their assigned ids for the report
// without rendering the image payloads.
func bankImages(banks []bankpack.Bank, bankIDs []int) []fit.BankImage {
	images := make([]fit.BankImage, len(banks))
	for i := range banks {
		images[i] = fit.BankImage{ID: bankIDs[i]}
	}
	return images
}

func writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
