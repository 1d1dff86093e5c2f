package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tom-seddon/vgm-packer/internal/fit"
	"github.com/tom-seddon/vgm-packer/pkg/vgc"
)

// printReport renders the verbose stream-size and bank-layout tables.
func printReport(w io.Writer, res *fit.Result) {
	tw := newTable("Stream", "Bytes")
	for _, s := range res.Streams {
		tw.AppendRow(table.Row{s.Index, len(s.Data)})
	}
	fmt.Fprintln(w, tw.Render())

	fmt.Fprintf(w, "Data fits in %d bank(s):\n", len(res.Banks))
	for i := range res.Banks {
		b := &res.Banks[i]
		tw := newTable("Addr", "Stream", "Bytes")
		addr := vgc.BankOrigin
		for _, s := range b.Streams {
			tw.AppendRow(table.Row{fmt.Sprintf("$%04x", addr), s.Index, len(s.Data)})
			addr += len(s.Data)
		}
		fmt.Fprintf(w, "Bank %x, %d ($%04x) byte(s) free:\n%s\n",
			res.Images[i].ID, b.Free(), b.Free(), tw.Render())
	}
}

// printTOC renders a decoded TOC as a stream location table.
func printTOC(w io.Writer, locations [vgc.NumStreams]vgc.StreamLocation) {
	tw := newTable("Stream", "Bank", "Addr")
	for i, loc := range locations {
		tw.AppendRow(table.Row{i, fmt.Sprintf("%x", loc.Bank), fmt.Sprintf("$%04x", loc.Addr)})
	}
	fmt.Fprintln(w, tw.Render())
}

func newTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	row := make(table.Row, len(headers))
	configs := make([]table.ColumnConfig, len(headers))
	for i, h := range headers {
		row[i] = h
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(row)
	tw.SetColumnConfigs(configs)
	return tw
}
