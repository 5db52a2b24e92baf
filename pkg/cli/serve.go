package cli

import (
	"context"
	"net"
	"net/http"

	"github.com/m-mizutani/duamind/pkg/adapter"
	"github.com/m-mizutani/duamind/pkg/server"
	"github.com/m-mizutani/duamind/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		cfg    config
		addr   string
		apiKey string
		model  string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address",
			Value:       ":8080",
			Sources:     cli.EnvVars("DUAMIND_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "Gemini API key (never exposed to clients)",
			Sources:     cli.EnvVars("GEMINI_API_KEY", "API_KEY"),
			Destination: &apiKey,
		},
		&cli.StringFlag{
			Name:        "model",
			Usage:       "Generative model name",
			Sources:     cli.EnvVars("DUAMIND_MODEL"),
			Destination: &model,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Run the generation proxy endpoint",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)
			logger := logging.From(ctx)

			// Without a key the server still runs; every generation
			// request is answered with a 500.
			var gemini adapter.Gemini
			if apiKey != "" {
				opts := []adapter.GeminiOption{}
				if model != "" {
					opts = append(opts, adapter.WithGenerativeModel(model))
				}
				client, err := adapter.NewGemini(ctx, apiKey, opts...)
				if err != nil {
					return goerr.Wrap(err, "failed to create gemini adapter")
				}
				gemini = client
			} else {
				logger.Warn("no API key configured, generation requests will fail")
			}

			httpServer := &http.Server{
				Addr:    addr,
				Handler: server.New(gemini),
				BaseContext: func(net.Listener) context.Context {
					return ctx
				},
			}

			logger.Info("generation proxy listening", "addr", addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return goerr.Wrap(err, "server stopped")
			}
			return nil
		},
	}
}
