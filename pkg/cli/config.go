package cli

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m-mizutani/duamind/pkg/adapter"
	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/duamind/pkg/repository"
	"github.com/m-mizutani/duamind/pkg/usecase/book"
	"github.com/m-mizutani/duamind/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// config holds configuration values
type config struct {
	logLevel   string
	configPath string

	// Prayer book storage
	storageDir string

	// Generation proxy
	serverURL string
}

// fileConfig is the optional YAML defaults file. Flags and environment
// variables always win over it.
type fileConfig struct {
	Server  string `yaml:"server"`
	Storage string `yaml:"storage"`
	Topic   string `yaml:"topic"`
	Style   string `yaml:"style"`
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("DUAMIND_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to YAML defaults file",
			Sources:     cli.EnvVars("DUAMIND_CONFIG"),
			Destination: &cfg.configPath,
		},
		&cli.StringFlag{
			Name:        "storage",
			Usage:       "Directory holding the prayer book",
			Sources:     cli.EnvVars("DUAMIND_STORAGE_DIR"),
			Destination: &cfg.storageDir,
		},
	}
}

// serverFlags returns flags for commands that call the generation proxy
func serverFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "server",
			Aliases:     []string{"s"},
			Usage:       "Base URL of the generation proxy",
			Sources:     cli.EnvVars("DUAMIND_SERVER"),
			Destination: &cfg.serverURL,
		},
	}
}

// loadFile merges the YAML defaults file into unset fields and returns
// the file defaults for command-level values (topic, style). A missing
// file is not an error.
func (cfg *config) loadFile() (*fileConfig, error) {
	path := cfg.configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &fileConfig{}, nil
		}
		path = filepath.Join(home, ".duamind", "config.yml")
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &fileConfig{}, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	if cfg.serverURL == "" {
		cfg.serverURL = fc.Server
	}
	if cfg.storageDir == "" {
		cfg.storageDir = fc.Storage
	}
	return &fc, nil
}

// setupContext attaches a configured logger to the context
func (cfg *config) setupContext(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// newStorage creates the file-backed storage for the prayer book
func (cfg *config) newStorage() (repository.Storage, error) {
	dir := cfg.storageDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve home directory")
		}
		dir = filepath.Join(home, ".duamind")
	}
	return repository.NewFile(dir)
}

// newBook creates the prayer book store backed by file storage
func (cfg *config) newBook(ctx context.Context) (*book.Book, error) {
	storage, err := cfg.newStorage()
	if err != nil {
		return nil, err
	}

	return book.New(ctx, storage), nil
}

// newGateway creates the generation gateway client
func (cfg *config) newGateway() (adapter.Gateway, error) {
	url := cfg.serverURL
	if url == "" {
		url = "http://localhost:8080"
	}
	return adapter.NewGateway(url)
}

// parseDuaID parses a command argument into a DuaID
func parseDuaID(arg string) (model.DuaID, error) {
	if arg == "" {
		return 0, goerr.New("dua ID is required")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "dua ID must be a number", goerr.V("arg", arg))
	}
	return model.DuaID(id), nil
}
