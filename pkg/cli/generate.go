package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/duamind/pkg/service/prompt"
	"github.com/m-mizutani/duamind/pkg/usecase/generate"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	inputHint = "Bitte schreibe 3 bis 1000 Zeichen, z. B. „Angst um Zukunft, innere Ruhe“."
	retryHint = "Ein Fehler ist aufgetreten. Bitte versuche es später erneut."

	safetyNotice = "Wichtiger Hinweis: Wenn du dich unsicher oder gefährdet fühlst, suche bitte sofort Hilfe bei Vertrauenspersonen oder lokalen Beratungsstellen. Du bist nicht allein."

	disclaimer = "Hinweis: Diese App formuliert Gebete, sie ersetzt keine Gelehrtenauskunft."
)

func generateCommand() *cli.Command {
	var (
		cfg        config
		keywords   string
		topicFlag  string
		styleFlag  string
		withAnrede bool
		save       bool
		copyText   bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "keywords",
			Aliases:     []string{"k"},
			Usage:       "Stichworte, was dich beschäftigt",
			Required:    true,
			Destination: &keywords,
		},
		&cli.StringFlag{
			Name:        "topic",
			Aliases:     []string{"t"},
			Usage:       "Thema des Gebets",
			Sources:     cli.EnvVars("DUAMIND_TOPIC"),
			Destination: &topicFlag,
		},
		&cli.StringFlag{
			Name:        "style",
			Usage:       "Stil des Gebets (kurz, mittel, poetisch, klassisch)",
			Sources:     cli.EnvVars("DUAMIND_STYLE"),
			Destination: &styleFlag,
		},
		&cli.BoolFlag{
			Name:        "anrede",
			Usage:       "Mit \"O Allah...\" beginnen",
			Value:       true,
			Destination: &withAnrede,
		},
		&cli.BoolFlag{
			Name:        "save",
			Usage:       "Im Gebetsbuch speichern",
			Destination: &save,
		},
		&cli.BoolFlag{
			Name:        "copy",
			Usage:       "Gebetstext in die Zwischenablage kopieren",
			Destination: &copyText,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, serverFlags(&cfg)...)

	return &cli.Command{
		Name:  "generate",
		Usage: "Ein persönliches Bittgebet formulieren",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)

			defaults, err := cfg.loadFile()
			if err != nil {
				return err
			}

			topic, style, err := resolveTopicStyle(topicFlag, styleFlag, defaults)
			if err != nil {
				return err
			}

			gateway, err := cfg.newGateway()
			if err != nil {
				return err
			}
			uc := generate.New(gateway)

			// Busy indicator for the single in-flight request
			busy := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			busy.Suffix = " Gebet wird formuliert..."
			busy.Start()

			result, err := uc.Run(ctx, prompt.Request{
				RawInput:   keywords,
				Topic:      topic,
				Style:      style,
				WithAnrede: withAnrede,
			})
			busy.Stop()

			if err != nil {
				if errors.Is(err, model.ErrInvalidInput) {
					fmt.Fprintln(c.Root().Writer, inputHint)
					return err
				}
				fmt.Fprintln(c.Root().Writer, retryHint)
				return err
			}

			fmt.Fprintf(c.Root().Writer, "%s\n", result.Text)
			if result.SafetyNotice {
				fmt.Fprintf(c.Root().Writer, "\n%s\n", safetyNotice)
			}
			fmt.Fprintf(c.Root().Writer, "\n%s\n", disclaimer)

			if copyText {
				if err := clipboard.WriteAll(result.Text); err != nil {
					fmt.Fprintln(c.Root().Writer, "Kopieren fehlgeschlagen")
				} else {
					fmt.Fprintln(c.Root().Writer, "In die Zwischenablage kopiert")
				}
			}

			if save {
				b, err := cfg.newBook(ctx)
				if err != nil {
					return err
				}
				dua, err := b.Insert(ctx, model.Dua{
					Text:       result.Text,
					Topic:      topic,
					Style:      style,
					WithAnrede: withAnrede,
				})
				if err != nil {
					return goerr.Wrap(err, "failed to save dua")
				}
				fmt.Fprintf(c.Root().Writer, "Gebet im Gebetsbuch gespeichert (ID %d)\n", dua.ID)
			}

			return nil
		},
	}
}

// resolveTopicStyle merges flag values with file defaults and validates
// against the fixed sets.
func resolveTopicStyle(topicFlag, styleFlag string, defaults *fileConfig) (model.Topic, model.Style, error) {
	topicValue := topicFlag
	if topicValue == "" {
		topicValue = defaults.Topic
	}
	if topicValue == "" {
		topicValue = string(model.TopicDankbarkeit)
	}
	topic := model.Topic(topicValue)
	if err := topic.Validate(); err != nil {
		return "", "", err
	}

	styleValue := styleFlag
	if styleValue == "" {
		styleValue = defaults.Style
	}
	if styleValue == "" {
		styleValue = string(model.StyleMittel)
	}
	style := model.Style(styleValue)
	if err := style.Validate(); err != nil {
		return "", "", err
	}

	return topic, style, nil
}
