package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func favoriteCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "favorite",
		Usage:     "Ein Gebet als Favorit markieren oder die Markierung entfernen",
		ArgsUsage: "<dua-id>",
		Flags:     globalFlags(&cfg),
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

			if b.Get(id) == nil {
				return goerr.New("dua not found", goerr.V("id", id))
			}

			if err := b.ToggleFavorite(ctx, id); err != nil {
				return goerr.Wrap(err, "failed to toggle favorite")
			}

			if b.Get(id).IsFavorite {
				fmt.Fprintln(c.Root().Writer, "Als Favorit markiert")
			} else {
				fmt.Fprintln(c.Root().Writer, "Favorit entfernt")
			}
			return nil
		},
	}
}
