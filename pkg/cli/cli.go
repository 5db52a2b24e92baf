package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "duamind",
		Usage: "Persönliche Bittgebete formulieren und im Gebetsbuch verwalten",
		Commands: []*cli.Command{
			serveCommand(),
			generateCommand(),
			listCommand(),
			showCommand(),
			favoriteCommand(),
			removeCommand(),
			exportCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
