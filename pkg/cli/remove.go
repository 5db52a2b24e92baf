package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func removeCommand() *cli.Command {
	var (
		cfg   config
		force bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Ohne Rückfrage löschen",
			Destination: &force,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "remove",
		Usage:     "Ein Gebet aus dem Gebetsbuch löschen",
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

			if b.Get(id) == nil {
				return goerr.New("dua not found", goerr.V("id", id))
			}

			if !force {
				confirmed, err := confirmDelete()
				if err != nil {
					return err
				}
				// Declining is a normal no-op, not an error
				if !confirmed {
					fmt.Fprintln(c.Root().Writer, "Löschen abgebrochen")
					return nil
				}
			}

			if err := b.Remove(ctx, id); err != nil {
				return goerr.Wrap(err, "failed to remove dua")
			}

			fmt.Fprintln(c.Root().Writer, "Gebet gelöscht")
			return nil
		},
	}
}

func confirmDelete() (bool, error) {
	rl, err := readline.New("Möchtest du dieses Gebet wirklich löschen? [j/N] ")
	if err != nil {
		return false, goerr.Wrap(err, "failed to open prompt")
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		// Ctrl-C / EOF counts as declining
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "j", "ja", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
