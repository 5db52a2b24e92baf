package cli

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		cfg      config
		copyText bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "copy",
			Usage:       "Gebetstext in die Zwischenablage kopieren",
			Destination: &copyText,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "show",
		Usage:     "Ein gespeichertes Gebet anzeigen",
		ArgsUsage: "<dua-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)

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

			fmt.Fprintf(c.Root().Writer, "Gebet vom %s\n", dua.CreatedAt.Format("02.01.2006"))
			fmt.Fprintf(c.Root().Writer, "%s • %s", dua.Topic, dua.Style)
			if dua.IsFavorite {
				fmt.Fprintf(c.Root().Writer, " • ★")
			}
			fmt.Fprintf(c.Root().Writer, "\n\n%s\n", dua.Text)

			if copyText {
				if err := clipboard.WriteAll(dua.Text); err != nil {
					fmt.Fprintln(c.Root().Writer, "Kopieren fehlgeschlagen")
				} else {
					fmt.Fprintln(c.Root().Writer, "In die Zwischenablage kopiert")
				}
			}
			return nil
		},
	}
}
