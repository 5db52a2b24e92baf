package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/duamind/pkg/export"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		cfg    config
		format string
		outDir string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"F"},
			Usage:       "Exportformat (png, pdf)",
			Value:       "png",
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Zielverzeichnis",
			Value:       ".",
			Destination: &outDir,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "export",
		Usage:     "Ein gespeichertes Gebet als Bild oder PDF exportieren",
		ArgsUsage: "<dua-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)

			if format != "png" && format != "pdf" {
				return goerr.New("format must be png or pdf", goerr.V("format", format))
			}

			id, err := parseDuaID(c.Args().First())
			if err != nil {
				return err
			}

			if _, err := cfg.loadFile(); err != nil {
				return err
			}

			b, err := cfg.newBook(ctx)
			if err != nil {
				return err
			}

			dua := b.Get(id)
			if dua == nil {
				return goerr.New("dua not found", goerr.V("id", id))
			}

			card := export.Compose(dua)
			path := filepath.Join(outDir, export.Filename(dua.Topic, dua.CreatedAt, format))

			file, err := os.Create(path)
			if err != nil {
				return goerr.Wrap(err, "failed to create export file", goerr.V("path", path))
			}
			defer file.Close()

			switch format {
			case "png":
				err = export.WriteImage(file, card)
			case "pdf":
				err = export.WritePDF(file, card)
			}
			if err != nil {
				// Export failure never touches the saved dua
				os.Remove(path)
				fmt.Fprintln(c.Root().Writer, "Fehler beim Export.")
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Exportiert: %s\n", path)
			return nil
		},
	}
}
