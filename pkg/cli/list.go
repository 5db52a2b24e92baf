package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/duamind/pkg/usecase/book"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		cfg       config
		favorites bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "favorites",
			Aliases:     []string{"f"},
			Usage:       "Nur Favoriten anzeigen",
			Destination: &favorites,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "Das Gebetsbuch anzeigen",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)

			if _, err := cfg.loadFile(); err != nil {
				return err
			}

			b, err := cfg.newBook(ctx)
			if err != nil {
				return err
			}

			filter := book.All
			if favorites {
				filter = book.FavoritesOnly
			}
			duas := b.List(filter)

			if len(duas) == 0 {
				fmt.Fprintln(c.Root().Writer, "Dein Gebetsbuch ist noch leer. Generiere ein Gebet und speichere es hier.")
				return nil
			}

			for _, dua := range duas {
				marker := " "
				if dua.IsFavorite {
					marker = "★"
				}
				fmt.Fprintf(c.Root().Writer, "%d\t%s\t%s • %s\t%s\n",
					dua.ID, marker, dua.Topic, dua.CreatedAt.Format("02.01.2006"), preview(dua.Text))
			}
			return nil
		},
	}
}

// preview truncates the dua text to a single 120-rune line.
func preview(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			runes[i] = ' '
		}
	}
	if len(runes) > 120 {
		return string(runes[:120]) + "…"
	}
	return string(runes)
}
