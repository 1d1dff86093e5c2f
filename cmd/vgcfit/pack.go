package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/tom-seddon/vgm-packer/internal/bankpack"
	"github.com/tom-seddon/vgm-packer/internal/fit"
	"github.com/tom-seddon/vgm-packer/pkg/vgc"
)

func packCmd() *cli.Command {
	var outputStem string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "write bank data into STEM.BANK.dat and the TOC into STEM.toc.dat",
			Required:    true,
			Destination: &outputStem,
		},
	}
	flags = append(flags, commonFlags()...)

	return &cli.Command{
		Name:      "pack",
		Usage:     "Split a VGC file across ROM banks and write the images plus TOC",
		ArgsUsage: "VGC-FILE",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one VGC file argument")
			}
			inputPath := cmd.Args().First()

			applyConfig(cmd, LoadConfig())
			log := buildLogger().With("run", uuid.NewString())

			bankIDs, err := bankpack.ParseBankIDs(banksArg)
			if err != nil {
				return err
			}

			f, err := vgc.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", inputPath, err)
			}
			defer func() { _ = f.Close() }()

			res, err := fit.Fit(f.Data, fit.Options{
				BankIDs: bankIDs,
				Logger:  log,
			})
			if err != nil {
				return err
			}

			if verbose {
				printReport(os.Stdout, res)
			}

			for _, img := range res.Images {
				path := fmt.Sprintf("%s.%x.dat", outputStem, img.ID)
				if err := os.WriteFile(path, img.Data, 0o644); err != nil {
					return fmt.Errorf("write bank image: %w", err)
				}
				log.Info("wrote bank image", "path", path, "bytes", len(img.Data))
			}

			tocPath := outputStem + ".toc.dat"
			if err := os.WriteFile(tocPath, res.TOC, 0o644); err != nil {
				return fmt.Errorf("write TOC: %w", err)
			}
			log.Info("wrote TOC", "path", tocPath, "bytes", len(res.TOC))

			return nil
		},
	}
}
